package repositories

import (
	"context"

	"github.com/budgetplanner/budget_planner_app/internal/core/domain"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its store-assigned id.
	FindAccountByID(ctx context.Context, id uint64) (*domain.Account, error)

	// ListAccounts retrieves the full accounts collection.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account and returns its assigned id.
	SaveAccount(ctx context.Context, account domain.Account) (uint64, error)

	// UpdateAccount writes back a full account record by its id.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account by id. Deleting an absent id is a no-op.
	DeleteAccount(ctx context.Context, id uint64) error
}

// AccountRepositoryFacade combines all account repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
