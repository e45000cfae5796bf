package domain_test

import (
	"testing"

	"github.com/budgetplanner/budget_planner_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_MatchesType(t *testing.T) {
	tests := []struct {
		name       string
		amount     decimal.Decimal
		recordType domain.RecordType
		want       bool
	}{
		{
			name:       "positive amount is income",
			amount:     decimal.NewFromFloat(75.00),
			recordType: domain.RecordTypeIncome,
			want:       true,
		},
		{
			name:       "negative amount is not income",
			amount:     decimal.NewFromFloat(-50.00),
			recordType: domain.RecordTypeIncome,
			want:       false,
		},
		{
			name:       "zero amount is not income",
			amount:     decimal.Zero,
			recordType: domain.RecordTypeIncome,
			want:       false,
		},
		{
			name:       "negative amount is expense",
			amount:     decimal.NewFromFloat(-10.00),
			recordType: domain.RecordTypeExpense,
			want:       true,
		},
		{
			name:       "zero amount is not expense",
			amount:     decimal.Zero,
			recordType: domain.RecordTypeExpense,
			want:       false,
		},
		{
			name:       "transfer matches nothing",
			amount:     decimal.NewFromFloat(100.00),
			recordType: domain.RecordTypeTransfer,
			want:       false,
		},
		{
			name:       "all matches everything",
			amount:     decimal.NewFromFloat(-1.00),
			recordType: domain.RecordTypeAll,
			want:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := domain.Transaction{Amount: tt.amount}
			assert.Equal(t, tt.want, txn.MatchesType(tt.recordType))
		})
	}
}

func TestAccountIcon_AssetFallback(t *testing.T) {
	for _, icon := range domain.AccountIcons {
		assert.True(t, icon.Valid())
		assert.NotEmpty(t, icon.Asset())
	}

	// Unknown values fall back to the cash asset.
	assert.Equal(t, domain.IconCash.Asset(), domain.AccountIcon("piggy").Asset())
	assert.False(t, domain.AccountIcon("piggy").Valid())
}
