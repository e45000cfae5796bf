package badgerdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/budgetplanner/budget_planner_app/internal/core/domain"
	portsrepo "github.com/budgetplanner/budget_planner_app/internal/core/ports/repositories"
)

type budgetRepository struct {
	store *Store
}

// NewBudgetRepository creates a new repository for budget data.
func NewBudgetRepository(store *Store) portsrepo.BudgetRepository {
	return &budgetRepository{store: store}
}

var _ portsrepo.BudgetRepository = (*budgetRepository)(nil)

func budgetIndexEntries(b domain.Budget) []IndexEntry {
	return []IndexEntry{
		{Index: IndexCategoryID, Value: EncodeID(b.CategoryID)},
	}
}

func (r *budgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) (uint64, error) {
	return r.store.Insert(CollectionBudgets, func(id uint64) ([]byte, []IndexEntry, error) {
		budget.ID = id
		value, err := json.Marshal(budget)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode budget: %w", err)
		}
		return value, budgetIndexEntries(budget), nil
	})
}

func (r *budgetRepository) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	raws, err := r.store.List(CollectionBudgets)
	if err != nil {
		return nil, err
	}
	budgets := make([]domain.Budget, 0, len(raws))
	for _, raw := range raws {
		var budget domain.Budget
		if err := json.Unmarshal(raw, &budget); err != nil {
			return nil, fmt.Errorf("failed to decode budget: %w", err)
		}
		budgets = append(budgets, budget)
	}
	return budgets, nil
}
