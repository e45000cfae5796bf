package services

import (
	"strings"

	"github.com/budgetplanner/budget_planner_app/internal/core/domain"
	"github.com/budgetplanner/budget_planner_app/internal/dto"
	"github.com/budgetplanner/budget_planner_app/internal/utils/daterange"
	"github.com/shopspring/decimal"
)

// recordFilter holds the resolved filter predicates for a records listing.
// All predicates are combined with AND; a record appears in the result only
// when it satisfies every one.
type recordFilter struct {
	accountID    uint64 // 0 matches every account
	search       string // lowercased; empty matches everything
	recordType   domain.RecordType
	minAmount    decimal.Decimal // compared against the absolute amount; zero leaves the bound open
	maxAmount    decimal.Decimal
	dateRange    daterange.Range
	accountNames map[uint64]string
}

func newRecordFilter(params dto.ListRecordsParams, dateRange daterange.Range, accountNames map[uint64]string) recordFilter {
	return recordFilter{
		accountID:    params.AccountID,
		search:       strings.ToLower(strings.TrimSpace(params.Search)),
		recordType:   params.Type,
		minAmount:    decimal.NewFromFloat(params.MinAmount),
		maxAmount:    decimal.NewFromFloat(params.MaxAmount),
		dateRange:    dateRange,
		accountNames: accountNames,
	}
}

// apply filters the transactions, preserving the input order.
func (f recordFilter) apply(txns []domain.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(txns))
	for _, txn := range txns {
		if f.matches(txn) {
			out = append(out, txn)
		}
	}
	return out
}

func (f recordFilter) matches(txn domain.Transaction) bool {
	if f.accountID != 0 && txn.AccountID != f.accountID {
		return false
	}
	if !txn.MatchesType(f.recordType) {
		return false
	}
	if f.search != "" && !f.matchesSearch(txn) {
		return false
	}
	abs := txn.Amount.Abs()
	if !f.minAmount.IsZero() && abs.LessThan(f.minAmount) {
		return false
	}
	if !f.maxAmount.IsZero() && abs.GreaterThan(f.maxAmount) {
		return false
	}
	return f.dateRange.Contains(txn.Date)
}

// matchesSearch checks the search term against the record's description,
// its category and the owning account's name, case-insensitively.
func (f recordFilter) matchesSearch(txn domain.Transaction) bool {
	if strings.Contains(strings.ToLower(txn.Description), f.search) {
		return true
	}
	if strings.Contains(strings.ToLower(txn.Category), f.search) {
		return true
	}
	name := f.accountNames[txn.AccountID]
	return name != "" && strings.Contains(strings.ToLower(name), f.search)
}
