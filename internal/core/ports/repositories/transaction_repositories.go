package repositories

import (
	"context"
	"time"

	"github.com/budgetplanner/budget_planner_app/internal/core/domain"
)

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its id.
	FindTransactionByID(ctx context.Context, id uint64) (*domain.Transaction, error)

	// ListTransactions retrieves the full transactions collection.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ListTransactionsByAccount retrieves all transactions owned by an
	// account, via the accountId index.
	ListTransactionsByAccount(ctx context.Context, accountID uint64) ([]domain.Transaction, error)

	// ListTransactionsByDateRange retrieves all transactions whose date
	// falls within [start, end], inclusive, via the date index.
	ListTransactionsByDateRange(ctx context.Context, start, end time.Time) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction and returns its assigned id.
	SaveTransaction(ctx context.Context, txn domain.Transaction) (uint64, error)

	// UpdateTransaction writes back a full transaction record by its id.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction by id. Idempotent.
	DeleteTransaction(ctx context.Context, id uint64) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
