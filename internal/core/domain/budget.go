package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPeriod is the recurrence of a budget.
type BudgetPeriod string

const (
	PeriodMonthly BudgetPeriod = "monthly"
	PeriodYearly  BudgetPeriod = "yearly"
)

// Budget caps spending for a category over a period. Budgets are created
// via seeding or an explicit add; no update or delete operation is exposed.
type Budget struct {
	ID         uint64          `json:"id"`
	CategoryID uint64          `json:"categoryId"` // Not enforced referentially against categories
	Amount     decimal.Decimal `json:"amount"`
	Period     BudgetPeriod    `json:"period"`
	StartDate  time.Time       `json:"startDate"`
	EndDate    *time.Time      `json:"endDate,omitempty"`
}
