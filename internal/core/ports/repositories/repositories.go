package repositories

import "context"

// MaintenanceRepository defines destructive store-wide operations.
type MaintenanceRepository interface {
	// ClearAllData empties every collection. Id counters survive, so
	// subsequent inserts keep counting upward.
	ClearAllData(ctx context.Context) error
}

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo     AccountRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	CategoryRepo    CategoryRepository
	BudgetRepo      BudgetRepository
	MaintenanceRepo MaintenanceRepository
}
