package services

import (
	"testing"
	"time"

	"github.com/budgetplanner/budget_planner_app/internal/core/domain"
	"github.com/budgetplanner/budget_planner_app/internal/dto"
	"github.com/budgetplanner/budget_planner_app/internal/utils/daterange"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func filterFixture() ([]domain.Transaction, map[uint64]string) {
	day := func(d int) time.Time {
		return time.Date(2025, time.June, d, 12, 0, 0, 0, time.UTC)
	}
	txns := []domain.Transaction{
		{ID: 1, AccountID: 1, Description: "Woolworths food", Category: "Groceries", Amount: decimal.RequireFromString("-250.00"), Date: day(1)},
		{ID: 2, AccountID: 1, Description: "Monthly salary", Category: "Salary", Amount: decimal.RequireFromString("15000.00"), Date: day(2)},
		{ID: 3, AccountID: 2, Description: "Uber to work", Category: "Transport", Amount: decimal.RequireFromString("-85.50"), Date: day(3)},
		{ID: 4, AccountID: 2, Description: "Refund", Category: "", Amount: decimal.RequireFromString("40.00"), Date: day(20)},
	}
	names := map[uint64]string{1: "Cash", 2: "RandBank"}
	return txns, names
}

func ids(txns []domain.Transaction) []uint64 {
	out := make([]uint64, len(txns))
	for i, txn := range txns {
		out[i] = txn.ID
	}
	return out
}

func TestRecordFilter(t *testing.T) {
	txns, names := filterFixture()

	tests := []struct {
		name    string
		params  dto.ListRecordsParams
		r       daterange.Range
		wantIDs []uint64
	}{
		{
			name:    "no constraints matches everything",
			params:  dto.ListRecordsParams{},
			wantIDs: []uint64{1, 2, 3, 4},
		},
		{
			name:    "account id zero matches all accounts",
			params:  dto.ListRecordsParams{AccountID: 0},
			wantIDs: []uint64{1, 2, 3, 4},
		},
		{
			name:    "account id filters",
			params:  dto.ListRecordsParams{AccountID: 2},
			wantIDs: []uint64{3, 4},
		},
		{
			name:    "expense type matches negative amounts",
			params:  dto.ListRecordsParams{Type: domain.RecordTypeExpense},
			wantIDs: []uint64{1, 3},
		},
		{
			name:    "transfer type matches nothing",
			params:  dto.ListRecordsParams{Type: domain.RecordTypeTransfer},
			wantIDs: []uint64{},
		},
		{
			name:    "search hits description case-insensitively",
			params:  dto.ListRecordsParams{Search: "WOOL"},
			wantIDs: []uint64{1},
		},
		{
			name:    "search hits category",
			params:  dto.ListRecordsParams{Search: "transp"},
			wantIDs: []uint64{3},
		},
		{
			name:    "search hits account name",
			params:  dto.ListRecordsParams{Search: "randbank"},
			wantIDs: []uint64{3, 4},
		},
		{
			name:    "amount bounds compare absolute values",
			params:  dto.ListRecordsParams{MinAmount: 50, MaxAmount: 300},
			wantIDs: []uint64{1, 3},
		},
		{
			name:    "zero max leaves the upper bound open",
			params:  dto.ListRecordsParams{MinAmount: 100},
			wantIDs: []uint64{1, 2},
		},
		{
			name:    "date range is inclusive",
			params:  dto.ListRecordsParams{},
			r:       daterange.ThisWeek(time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC)),
			wantIDs: []uint64{2, 3},
		},
		{
			name:    "predicates combine with AND",
			params:  dto.ListRecordsParams{AccountID: 1, Type: domain.RecordTypeExpense, Search: "food"},
			wantIDs: []uint64{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newRecordFilter(tt.params, tt.r, names).apply(txns)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}
