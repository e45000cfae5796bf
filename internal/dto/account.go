package dto

import (
	"time"

	"github.com/budgetplanner/budget_planner_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name          string             `json:"name" binding:"required"`
	AccountNumber string             `json:"accountNumber"` // Optional
	Balance       decimal.Decimal    `json:"balance"`       // Opening balance, any sign
	Currency      string             `json:"currency" binding:"required"`
	Color         string             `json:"color" binding:"required"`
	Icon          domain.AccountIcon `json:"icon" binding:"required,accounticon"`
	Locked        bool               `json:"locked"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateAccountRequest struct {
	Name          *string             `json:"name"`
	AccountNumber *string             `json:"accountNumber"`
	Balance       *decimal.Decimal    `json:"balance"`
	Currency      *string             `json:"currency"`
	Color         *string             `json:"color"`
	Icon          *domain.AccountIcon `json:"icon" binding:"omitempty,accounticon"`
	Locked        *bool               `json:"locked"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	ID            uint64             `json:"id"`
	Name          string             `json:"name"`
	AccountNumber string             `json:"accountNumber,omitempty"`
	Balance       decimal.Decimal    `json:"balance"`
	Currency      string             `json:"currency"`
	Color         string             `json:"color"`
	Icon          domain.AccountIcon `json:"icon"`
	IconAsset     string             `json:"iconAsset"` // Presentation asset token for the icon
	Locked        bool               `json:"locked"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// ToAccountResponse converts a domain.Account to an AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:            acc.ID,
		Name:          acc.Name,
		AccountNumber: acc.AccountNumber,
		Balance:       acc.Balance,
		Currency:      acc.Currency,
		Color:         acc.Color,
		Icon:          acc.Icon,
		IconAsset:     acc.Icon.Asset(),
		Locked:        acc.Locked,
		CreatedAt:     acc.CreatedAt,
		UpdatedAt:     acc.UpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}
