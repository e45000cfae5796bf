package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a user-visible money account within the core domain.
// This is the primary representation used by services.
type Account struct {
	ID            uint64          `json:"id"` // Store-assigned, immutable after creation
	Name          string          `json:"name"`
	AccountNumber string          `json:"accountNumber,omitempty"` // Optional external account number
	Balance       decimal.Decimal `json:"balance"`                 // Any sign; adjusted when records are posted
	Currency      string          `json:"currency"`                // ISO 4217-like token, e.g. "ZAR"
	Color         string          `json:"color"`                   // Display color token
	Icon          AccountIcon     `json:"icon"`
	Locked        bool            `json:"locked"`
	AuditFields
}
