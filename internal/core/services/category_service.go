package services

import (
	"context"
	"log/slog"

	"github.com/budgetplanner/budget_planner_app/internal/core/domain"
	portsrepo "github.com/budgetplanner/budget_planner_app/internal/core/ports/repositories"
	portssvc "github.com/budgetplanner/budget_planner_app/internal/core/ports/services"
	"github.com/budgetplanner/budget_planner_app/internal/dto"
)

// categoryServiceImpl implements the CategorySvcFacade interface
type categoryServiceImpl struct {
	BaseService
	categoryRepo portsrepo.CategoryRepository
}

// NewCategoryServiceImpl creates a new category service
func NewCategoryServiceImpl(repo portsrepo.CategoryRepository) portssvc.CategorySvcFacade {
	return &categoryServiceImpl{
		categoryRepo: repo,
	}
}

var _ portssvc.CategorySvcFacade = (*categoryServiceImpl)(nil)

func (s *categoryServiceImpl) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	category := domain.Category{
		Name:  req.Name,
		Type:  req.Type,
		Color: req.Color,
		Icon:  req.Icon,
	}

	id, err := s.categoryRepo.SaveCategory(ctx, category)
	if err != nil {
		s.LogError(ctx, err, "Failed to save category",
			slog.String("name", category.Name))
		return nil, err
	}
	category.ID = id

	s.LogInfo(ctx, "Category created successfully",
		slog.Uint64("category_id", category.ID),
		slog.String("name", category.Name))
	return &category, nil
}

func (s *categoryServiceImpl) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, err
	}

	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}
