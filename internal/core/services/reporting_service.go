package services

import (
	"context"
	"sort"
	"time"

	"github.com/budgetplanner/budget_planner_app/internal/core/domain"
	portsrepo "github.com/budgetplanner/budget_planner_app/internal/core/ports/repositories"
	portssvc "github.com/budgetplanner/budget_planner_app/internal/core/ports/services"
	"github.com/budgetplanner/budget_planner_app/internal/dto"
	"github.com/budgetplanner/budget_planner_app/internal/utils/daterange"
	"github.com/shopspring/decimal"
)

const (
	// displayCurrency is the currency all dashboard totals are quoted in.
	displayCurrency = "ZAR"
	// recentRecordCount is how many transactions the dashboard shows.
	recentRecordCount = 5
)

// usdToZarRate is the flat conversion applied to non-ZAR balances when
// summing the total. A live rate feed is out of scope for a local app.
var usdToZarRate = decimal.NewFromInt(18)

// reportingServiceImpl implements the ReportingSvcFacade interface
type reportingServiceImpl struct {
	BaseService
	accountRepo portsrepo.AccountReader
	txnRepo     portsrepo.TransactionReader
}

// NewReportingServiceImpl creates a new reporting service
func NewReportingServiceImpl(accountRepo portsrepo.AccountReader, txnRepo portsrepo.TransactionReader) portssvc.ReportingSvcFacade {
	return &reportingServiceImpl{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingServiceImpl)(nil)

func (s *reportingServiceImpl) GetDashboardSummary(ctx context.Context, now time.Time) (*dto.DashboardSummary, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for dashboard")
		return nil, err
	}

	total := decimal.Zero
	accountNames := make(map[uint64]string, len(accounts))
	for _, acc := range accounts {
		accountNames[acc.ID] = acc.Name
		if acc.Currency == displayCurrency {
			total = total.Add(acc.Balance)
		} else {
			total = total.Add(acc.Balance.Mul(usdToZarRate))
		}
	}

	month := daterange.ThisMonth(now)
	monthTxns, err := s.txnRepo.ListTransactionsByDateRange(ctx, *month.Start, *month.End)
	if err != nil {
		s.LogError(ctx, err, "Failed to list this month's records for dashboard")
		return nil, err
	}

	income := decimal.Zero
	expense := decimal.Zero
	for _, txn := range monthTxns {
		if txn.Amount.IsPositive() {
			income = income.Add(txn.Amount)
		} else {
			expense = expense.Add(txn.Amount.Abs())
		}
	}

	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list records for dashboard")
		return nil, err
	}
	recent := recentTransactions(txns, recentRecordCount)

	summary := &dto.DashboardSummary{
		Currency:     displayCurrency,
		TotalBalance: total,
		Accounts:     dto.ToListAccountResponse(accounts),
		MonthLabel:   month.Label,
		MonthIncome:  income,
		MonthExpense: expense,
		Recent:       dto.ToListRecordResponse(recent, accountNames),
	}
	// A record may outlive its account; the store never cascades deletes.
	for i := range summary.Recent {
		if summary.Recent[i].AccountName == "" {
			summary.Recent[i].AccountName = "Unknown"
		}
	}
	return summary, nil
}

// recentTransactions returns the n most recent transactions by date,
// newest first. The input slice is not modified.
func recentTransactions(txns []domain.Transaction, n int) []domain.Transaction {
	sorted := make([]domain.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
