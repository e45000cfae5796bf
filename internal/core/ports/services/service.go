package services

// ServiceContainer holds instances of all the application services. This is
// the main entry point for accessing service functionality and is what the
// composition root hands to the handlers.
type ServiceContainer struct {
	Account     AccountSvcFacade
	Record      RecordSvcFacade
	Category    CategorySvcFacade
	Budget      BudgetSvcFacade
	Reporting   ReportingSvcFacade
	Maintenance MaintenanceSvcFacade
}
