package services

import (
	"context"
	"time"

	"github.com/budgetplanner/budget_planner_app/internal/dto"
)

// ReportingSvcFacade computes the dashboard's derived numbers.
type ReportingSvcFacade interface {
	// GetDashboardSummary loads accounts and transactions and derives the
	// total balance (in the display currency), this month's income and
	// expense totals, and the most recent transactions.
	GetDashboardSummary(ctx context.Context, now time.Time) (*dto.DashboardSummary, error)
}
