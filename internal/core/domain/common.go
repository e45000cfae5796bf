package domain

import "time"

// AuditFields holds the creation/update timestamps stamped on mutating
// operations. They are wall-clock metadata only and play no part in
// ordering or concurrency control.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
