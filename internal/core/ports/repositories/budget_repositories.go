package repositories

import (
	"context"

	"github.com/budgetplanner/budget_planner_app/internal/core/domain"
)

// BudgetRepository defines the operations exposed for budget data.
// Budgets are create-and-list only; no update or delete exists.
type BudgetRepository interface {
	// SaveBudget persists a new budget and returns its assigned id.
	SaveBudget(ctx context.Context, budget domain.Budget) (uint64, error)

	// ListBudgets retrieves the full budgets collection.
	ListBudgets(ctx context.Context) ([]domain.Budget, error)
}
