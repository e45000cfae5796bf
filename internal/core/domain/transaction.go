package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordType classifies a transaction for filtering purposes. It is derived
// from the sign of the amount and is never persisted: a negative amount is
// an expense, a positive amount is income. "transfer" has no persisted
// marker yet, so it matches no transaction.
type RecordType string

const (
	RecordTypeAll      RecordType = "all"
	RecordTypeIncome   RecordType = "income"
	RecordTypeExpense  RecordType = "expense"
	RecordTypeTransfer RecordType = "transfer"
)

// Transaction represents a single money movement against one account.
type Transaction struct {
	ID          uint64          `json:"id"`        // Store-assigned
	AccountID   uint64          `json:"accountId"` // Owning account; not enforced referentially
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"` // Signed: negative = expense, positive = income
	Date        time.Time       `json:"date"`
	Category    string          `json:"category,omitempty"`
	HasReceipt  bool            `json:"hasReceipt,omitempty"`
	AuditFields
}

// MatchesType reports whether the transaction satisfies the given record
// type filter based on the sign of its amount.
func (t Transaction) MatchesType(rt RecordType) bool {
	switch rt {
	case RecordTypeIncome:
		return t.Amount.IsPositive()
	case RecordTypeExpense:
		return t.Amount.IsNegative()
	case RecordTypeTransfer:
		// No transaction carries a transfer marker.
		return false
	default:
		return true
	}
}
