package badgerdb

import (
	"context"
	"errors"

	"github.com/budgetplanner/budget_planner_app/internal/apperrors"
	portsrepo "github.com/budgetplanner/budget_planner_app/internal/core/ports/repositories"
)

func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}

type maintenanceRepository struct {
	store *Store
}

// NewMaintenanceRepository creates the repository for store-wide
// destructive operations.
func NewMaintenanceRepository(store *Store) portsrepo.MaintenanceRepository {
	return &maintenanceRepository{store: store}
}

var _ portsrepo.MaintenanceRepository = (*maintenanceRepository)(nil)

// ClearAllData empties all four collections.
func (r *maintenanceRepository) ClearAllData(ctx context.Context) error {
	return r.store.Clear(Collections...)
}
