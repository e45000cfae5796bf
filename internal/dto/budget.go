package dto

import (
	"time"

	"github.com/budgetplanner/budget_planner_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to create a new budget.
type CreateBudgetRequest struct {
	CategoryID uint64              `json:"categoryId" binding:"required"`
	Amount     decimal.Decimal     `json:"amount" binding:"required"`
	Period     domain.BudgetPeriod `json:"period" binding:"required,oneof=monthly yearly"`
	StartDate  time.Time           `json:"startDate" binding:"required"`
	EndDate    *time.Time          `json:"endDate"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	ID         uint64              `json:"id"`
	CategoryID uint64              `json:"categoryId"`
	Amount     decimal.Decimal     `json:"amount"`
	Period     domain.BudgetPeriod `json:"period"`
	StartDate  time.Time           `json:"startDate"`
	EndDate    *time.Time          `json:"endDate,omitempty"`
}

// ToBudgetResponse converts a domain.Budget to a BudgetResponse DTO.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		ID:         b.ID,
		CategoryID: b.CategoryID,
		Amount:     b.Amount,
		Period:     b.Period,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
	}
}

// ToListBudgetResponse converts a slice of budgets to response DTOs.
func ToListBudgetResponse(budgets []domain.Budget) []BudgetResponse {
	res := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		res[i] = ToBudgetResponse(&b)
	}
	return res
}
