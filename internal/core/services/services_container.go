package services

import (
	portsrepo "github.com/velorapos/velora_backend/internal/core/ports/repositories"
	portssvc "github.com/velorapos/velora_backend/internal/core/ports/services"
	"github.com/velorapos/velora_backend/internal/platform/config"
	"github.com/velorapos/velora_backend/pkg/cache"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, stockCache *cache.StockCache) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Company comes first: it is the authorizer every company-scoped service
	// depends on.
	container.Company = NewCompanyService(repos.CompanyRepo)
	authorizer := container.Company.(portssvc.CompanyAuthorizerSvc)

	container.User = NewUserService(repos.UserRepo)
	container.Account = NewAccountService(repos.AccountRepo, authorizer)
	container.Product = NewProductService(repos.VariantRepo, authorizer)
	container.CashSession = NewCashSessionService(repos.CashSessionRepo, repos.TransactionRepo, authorizer)
	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		repos.VariantRepo,
		repos.CashSessionRepo,
		repos.UserRepo,
		authorizer,
		stockCache,
	)
	container.Inventory = NewInventoryService(repos.TransactionRepo, repos.VariantRepo, authorizer, stockCache)
	container.Ledger = NewLedgerService(repos.TransactionRepo, repos.AccountRepo, authorizer)
	container.Reporting = NewReportingService(container.Ledger, repos.AccountRepo, authorizer)
	container.Auth = NewAuthService(cfg, container.User)
	container.RegisterToken = NewRegisterTokenService(repos.RegisterTokenRepo, authorizer)

	return container
}
