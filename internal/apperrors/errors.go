package apperrors

import "errors"

// ErrNotFound indicates that a requested record could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrNotReady indicates that the store has not finished initializing.
var ErrNotReady = errors.New("store not initialized")
