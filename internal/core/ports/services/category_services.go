package services

import (
	"context"

	"github.com/budgetplanner/budget_planner_app/internal/core/domain"
	"github.com/budgetplanner/budget_planner_app/internal/dto"
)

// CategorySvcFacade defines the category operations exposed to handlers.
type CategorySvcFacade interface {
	// CreateCategory persists a new category and returns it with its id.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)

	// ListCategories retrieves the full categories collection.
	ListCategories(ctx context.Context) ([]domain.Category, error)
}
