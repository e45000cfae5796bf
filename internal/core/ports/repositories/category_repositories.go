package repositories

import (
	"context"

	"github.com/budgetplanner/budget_planner_app/internal/core/domain"
)

// CategoryRepository defines the operations exposed for category data.
// Categories are create-and-list only; no update or delete exists.
type CategoryRepository interface {
	// SaveCategory persists a new category and returns its assigned id.
	SaveCategory(ctx context.Context, category domain.Category) (uint64, error)

	// ListCategories retrieves the full categories collection.
	ListCategories(ctx context.Context) ([]domain.Category, error)
}
