package services

import (
	portsrepo "github.com/budgetplanner/budget_planner_app/internal/core/ports/repositories"
	portssvc "github.com/budgetplanner/budget_planner_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountServiceImpl(repos.AccountRepo)
	container.Record = NewRecordServiceImpl(repos.TransactionRepo, repos.AccountRepo)
	container.Category = NewCategoryServiceImpl(repos.CategoryRepo)
	container.Budget = NewBudgetServiceImpl(repos.BudgetRepo)
	container.Reporting = NewReportingServiceImpl(repos.AccountRepo, repos.TransactionRepo)
	container.Maintenance = NewMaintenanceServiceImpl(repos.MaintenanceRepo, repos.AccountRepo, repos.CategoryRepo)

	return container
}
