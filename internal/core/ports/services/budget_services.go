package services

import (
	"context"

	"github.com/budgetplanner/budget_planner_app/internal/core/domain"
	"github.com/budgetplanner/budget_planner_app/internal/dto"
)

// BudgetSvcFacade defines the budget operations exposed to handlers.
type BudgetSvcFacade interface {
	// CreateBudget persists a new budget and returns it with its id.
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.Budget, error)

	// ListBudgets retrieves the full budgets collection.
	ListBudgets(ctx context.Context) ([]domain.Budget, error)
}
