package services

import (
	"context"
	"log/slog"

	"github.com/budgetplanner/budget_planner_app/internal/core/domain"
	portsrepo "github.com/budgetplanner/budget_planner_app/internal/core/ports/repositories"
	portssvc "github.com/budgetplanner/budget_planner_app/internal/core/ports/services"
	"github.com/budgetplanner/budget_planner_app/internal/dto"
)

// budgetServiceImpl implements the BudgetSvcFacade interface
type budgetServiceImpl struct {
	BaseService
	budgetRepo portsrepo.BudgetRepository
}

// NewBudgetServiceImpl creates a new budget service
func NewBudgetServiceImpl(repo portsrepo.BudgetRepository) portssvc.BudgetSvcFacade {
	return &budgetServiceImpl{
		budgetRepo: repo,
	}
}

var _ portssvc.BudgetSvcFacade = (*budgetServiceImpl)(nil)

func (s *budgetServiceImpl) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	// The category id is stored as given; budgets are not validated
	// against the categories collection.
	budget := domain.Budget{
		CategoryID: req.CategoryID,
		Amount:     req.Amount,
		Period:     req.Period,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	}

	id, err := s.budgetRepo.SaveBudget(ctx, budget)
	if err != nil {
		s.LogError(ctx, err, "Failed to save budget",
			slog.Uint64("category_id", budget.CategoryID))
		return nil, err
	}
	budget.ID = id

	s.LogInfo(ctx, "Budget created successfully",
		slog.Uint64("budget_id", budget.ID),
		slog.Uint64("category_id", budget.CategoryID))
	return &budget, nil
}

func (s *budgetServiceImpl) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets")
		return nil, err
	}

	if budgets == nil {
		return []domain.Budget{}, nil
	}
	return budgets, nil
}
