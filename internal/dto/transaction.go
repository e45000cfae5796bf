package dto

import (
	"time"

	"github.com/budgetplanner/budget_planner_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecordRequest defines the data submitted by the add-record form.
// The client supplies a positive amount plus a type; the stored amount's
// sign is derived from the type (negative = expense, positive = income).
type CreateRecordRequest struct {
	AccountID   uint64            `json:"accountId" binding:"required"`
	Type        domain.RecordType `json:"type" binding:"required,oneof=income expense"`
	Amount      decimal.Decimal   `json:"amount" binding:"required"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Date        time.Time         `json:"date"` // Defaults to now when omitted
	HasReceipt  bool              `json:"hasReceipt"`
}

// SignedAmount is the amount as persisted: expenses negative, income
// positive, regardless of the sign the client sent.
func (r CreateRecordRequest) SignedAmount() decimal.Decimal {
	if r.Type == domain.RecordTypeExpense {
		return r.Amount.Abs().Neg()
	}
	return r.Amount.Abs()
}

// UpdateRecordRequest defines the data allowed for updating a record.
// Pointers distinguish zero-value updates from fields not provided.
// Note that changing the amount does not re-reconcile any account balance.
type UpdateRecordRequest struct {
	AccountID   *uint64          `json:"accountId"`
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *time.Time       `json:"date"`
	Category    *string          `json:"category"`
	HasReceipt  *bool            `json:"hasReceipt"`
}

// ListRecordsParams defines the query parameters of the records view's
// filter sidebar. Zero values impose no constraint: accountId 0 means all
// accounts, zero amounts leave that bound open, zero times leave the date
// interval unbounded on that side.
type ListRecordsParams struct {
	AccountID uint64            `form:"accountId"`
	Search    string            `form:"search"`
	Type      domain.RecordType `form:"type,default=all" binding:"omitempty,oneof=all income expense transfer"`
	MinAmount float64           `form:"minAmount" binding:"omitempty,gte=0"`
	MaxAmount float64           `form:"maxAmount" binding:"omitempty,gte=0"`
	Range     string            `form:"range" binding:"omitempty,oneof=this_week this_month this_year last_30 last_90 all"`
	Start     time.Time         `form:"start" time_format:"2006-01-02T15:04:05Z07:00"`
	End       time.Time         `form:"end" time_format:"2006-01-02T15:04:05Z07:00"`
}

// RecordResponse defines the data returned for a transaction record.
type RecordResponse struct {
	ID          uint64            `json:"id"`
	AccountID   uint64            `json:"accountId"`
	AccountName string            `json:"accountName,omitempty"`
	Description string            `json:"description"`
	Amount      decimal.Decimal   `json:"amount"`
	Type        domain.RecordType `json:"type,omitempty"` // Derived from the amount's sign
	Date        time.Time         `json:"date"`
	Category    string            `json:"category,omitempty"`
	HasReceipt  bool              `json:"hasReceipt,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// DateRangeInfo echoes the resolved date interval and its display label.
type DateRangeInfo struct {
	Label string     `json:"label"`
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// ListRecordsResponse is the filtered records list plus the resolved range.
type ListRecordsResponse struct {
	Records []RecordResponse `json:"records"`
	Total   int              `json:"total"`
	Range   DateRangeInfo    `json:"range"`
}

// ToRecordResponse converts a domain.Transaction to a RecordResponse DTO,
// resolving the owning account's name from the given lookup (empty when
// the account no longer exists; the store never cascades deletions).
func ToRecordResponse(txn *domain.Transaction, accountNames map[uint64]string) RecordResponse {
	return RecordResponse{
		ID:          txn.ID,
		AccountID:   txn.AccountID,
		AccountName: accountNames[txn.AccountID],
		Description: txn.Description,
		Amount:      txn.Amount,
		Type:        recordTypeOf(*txn),
		Date:        txn.Date,
		Category:    txn.Category,
		HasReceipt:  txn.HasReceipt,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}
}

// ToListRecordResponse converts a slice of transactions to response DTOs.
func ToListRecordResponse(txns []domain.Transaction, accountNames map[uint64]string) []RecordResponse {
	res := make([]RecordResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToRecordResponse(&txn, accountNames)
	}
	return res
}

func recordTypeOf(txn domain.Transaction) domain.RecordType {
	switch {
	case txn.Amount.IsPositive():
		return domain.RecordTypeIncome
	case txn.Amount.IsNegative():
		return domain.RecordTypeExpense
	default:
		return ""
	}
}
