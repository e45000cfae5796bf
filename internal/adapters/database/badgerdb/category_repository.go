package badgerdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/budgetplanner/budget_planner_app/internal/core/domain"
	portsrepo "github.com/budgetplanner/budget_planner_app/internal/core/ports/repositories"
)

type categoryRepository struct {
	store *Store
}

// NewCategoryRepository creates a new repository for category data.
func NewCategoryRepository(store *Store) portsrepo.CategoryRepository {
	return &categoryRepository{store: store}
}

var _ portsrepo.CategoryRepository = (*categoryRepository)(nil)

func categoryIndexEntries(c domain.Category) []IndexEntry {
	return []IndexEntry{
		{Index: IndexName, Value: []byte(c.Name)},
		{Index: IndexType, Value: []byte(c.Type)},
	}
}

func (r *categoryRepository) SaveCategory(ctx context.Context, category domain.Category) (uint64, error) {
	return r.store.Insert(CollectionCategories, func(id uint64) ([]byte, []IndexEntry, error) {
		category.ID = id
		value, err := json.Marshal(category)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode category: %w", err)
		}
		return value, categoryIndexEntries(category), nil
	})
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	raws, err := r.store.List(CollectionCategories)
	if err != nil {
		return nil, err
	}
	categories := make([]domain.Category, 0, len(raws))
	for _, raw := range raws {
		var category domain.Category
		if err := json.Unmarshal(raw, &category); err != nil {
			return nil, fmt.Errorf("failed to decode category: %w", err)
		}
		categories = append(categories, category)
	}
	return categories, nil
}
