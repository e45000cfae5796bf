package dto

import (
	"github.com/shopspring/decimal"
)

// DashboardSummary aggregates the dashboard view's derived numbers: the
// total balance across all accounts (converted to the display currency),
// the per-account cards, this month's income/expense totals and the most
// recent transactions.
type DashboardSummary struct {
	Currency     string            `json:"currency"` // Display currency of the totals
	TotalBalance decimal.Decimal   `json:"totalBalance"`
	Accounts     []AccountResponse `json:"accounts"`
	MonthLabel   string            `json:"monthLabel"`
	MonthIncome  decimal.Decimal   `json:"monthIncome"`
	MonthExpense decimal.Decimal   `json:"monthExpense"` // Absolute value of this month's expenses
	Recent       []RecordResponse  `json:"recentTransactions"`
}
