package services

import "context"

// MaintenanceSvcFacade groups the destructive reset and first-run seeding
// operations.
type MaintenanceSvcFacade interface {
	// ClearAllData empties all four collections. Subsequent list calls
	// return empty sets until the store is reseeded or repopulated.
	ClearAllData(ctx context.Context) error

	// SeedInitialData inserts the default accounts and categories, but
	// only when the accounts collection is empty. It is skipped entirely
	// as soon as any account exists.
	SeedInitialData(ctx context.Context) error
}
