package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/budgetplanner/budget_planner_app/internal/core/domain"
	portsrepo "github.com/budgetplanner/budget_planner_app/internal/core/ports/repositories"
	portssvc "github.com/budgetplanner/budget_planner_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// maintenanceServiceImpl implements the MaintenanceSvcFacade interface
type maintenanceServiceImpl struct {
	BaseService
	maintenanceRepo portsrepo.MaintenanceRepository
	accountRepo     portsrepo.AccountRepositoryFacade
	categoryRepo    portsrepo.CategoryRepository
}

// NewMaintenanceServiceImpl creates a new maintenance service
func NewMaintenanceServiceImpl(maintenanceRepo portsrepo.MaintenanceRepository, accountRepo portsrepo.AccountRepositoryFacade, categoryRepo portsrepo.CategoryRepository) portssvc.MaintenanceSvcFacade {
	return &maintenanceServiceImpl{
		maintenanceRepo: maintenanceRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
	}
}

var _ portssvc.MaintenanceSvcFacade = (*maintenanceServiceImpl)(nil)

func (s *maintenanceServiceImpl) ClearAllData(ctx context.Context) error {
	if err := s.maintenanceRepo.ClearAllData(ctx); err != nil {
		s.LogError(ctx, err, "Failed to clear store")
		return err
	}
	s.LogInfo(ctx, "All data cleared")
	return nil
}

// SeedInitialData populates the default accounts and categories on first
// run. The presence of any account at all marks the store as seeded, so an
// interrupted earlier seed (accounts written, categories not) is never
// retried.
func (s *maintenanceServiceImpl) SeedInitialData(ctx context.Context) error {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to check for existing accounts before seeding")
		return err
	}
	if len(accounts) > 0 {
		s.LogDebug(ctx, "Store already seeded, skipping",
			slog.Int("accounts", len(accounts)))
		return nil
	}

	now := time.Now()
	for _, acc := range defaultAccounts(now) {
		if _, err := s.accountRepo.SaveAccount(ctx, acc); err != nil {
			s.LogError(ctx, err, "Failed to seed account",
				slog.String("name", acc.Name))
			return err
		}
	}
	for _, cat := range defaultCategories() {
		if _, err := s.categoryRepo.SaveCategory(ctx, cat); err != nil {
			s.LogError(ctx, err, "Failed to seed category",
				slog.String("name", cat.Name))
			return err
		}
	}

	s.LogInfo(ctx, "Seeded initial accounts and categories")
	return nil
}

func defaultAccounts(now time.Time) []domain.Account {
	audit := domain.AuditFields{CreatedAt: now, UpdatedAt: now}
	return []domain.Account{
		{
			Name:        "Cash",
			Balance:     decimal.RequireFromString("528.00"),
			Currency:    "ZAR",
			Color:       "#0ea5e9",
			Icon:        domain.IconCash,
			AuditFields: audit,
		},
		{
			Name:        "RandBank",
			Balance:     decimal.RequireFromString("1059.92"),
			Currency:    "ZAR",
			Color:       "#10b981",
			Icon:        domain.IconBank,
			AuditFields: audit,
		},
		{
			Name:        "Nedbank",
			Balance:     decimal.RequireFromString("0.00"),
			Currency:    "ZAR",
			Color:       "#059669",
			Icon:        domain.IconBank,
			AuditFields: audit,
		},
	}
}

func defaultCategories() []domain.Category {
	return []domain.Category{
		{Name: "Groceries", Type: domain.CategoryExpense, Color: "#ef4444", Icon: "shopping-cart"},
		{Name: "Transport", Type: domain.CategoryExpense, Color: "#f59e0b", Icon: "car"},
		{Name: "Salary", Type: domain.CategoryIncome, Color: "#10b981", Icon: "dollar-sign"},
	}
}
