package services

import (
	"context"

	"github.com/budgetplanner/budget_planner_app/internal/core/domain"
	"github.com/budgetplanner/budget_planner_app/internal/dto"
)

// AccountSvcFacade defines the account operations exposed to handlers.
type AccountSvcFacade interface {
	// CreateAccount stamps timestamps, persists the account and returns it
	// with its assigned id.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// GetAccountByID retrieves a single account.
	GetAccountByID(ctx context.Context, id uint64) (*domain.Account, error)

	// ListAccounts retrieves the full accounts collection.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// UpdateAccount merges the provided fields over the existing record
	// (read-modify-write) and advances updatedAt. Fails with
	// apperrors.ErrNotFound for an unknown id.
	UpdateAccount(ctx context.Context, id uint64, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes the account. Idempotent; transactions that
	// reference the account are left in place.
	DeleteAccount(ctx context.Context, id uint64) error
}
