package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Transaction   TransactionSvcFacade
	Inventory     InventorySvcFacade
	Ledger        LedgerSvcFacade
	Reporting     ReportingSvcFacade
	Account       AccountSvcFacade
	Product       ProductSvcFacade
	CashSession   CashSessionSvcFacade
	User          UserSvcFacade
	Company       CompanySvcFacade
	Auth          AuthSvcFacade
	RegisterToken RegisterTokenSvc
}
