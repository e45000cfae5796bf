package dto

import (
	"github.com/budgetplanner/budget_planner_app/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a new category.
type CreateCategoryRequest struct {
	Name  string              `json:"name" binding:"required"`
	Type  domain.CategoryType `json:"type" binding:"required,oneof=income expense"`
	Color string              `json:"color" binding:"required"`
	Icon  string              `json:"icon"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	ID    uint64              `json:"id"`
	Name  string              `json:"name"`
	Type  domain.CategoryType `json:"type"`
	Color string              `json:"color"`
	Icon  string              `json:"icon,omitempty"`
}

// ToCategoryResponse converts a domain.Category to a CategoryResponse DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:    c.ID,
		Name:  c.Name,
		Type:  c.Type,
		Color: c.Color,
		Icon:  c.Icon,
	}
}

// ToListCategoryResponse converts a slice of categories to response DTOs.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		res[i] = ToCategoryResponse(&c)
	}
	return res
}
