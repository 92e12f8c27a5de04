package repositories

import (
	"context"

	"github.com/velorapos/velora_backend/internal/core/domain"
)

// AccountReader defines read operations for chart-of-accounts data.
type AccountReader interface {
	// FindAccountByID retrieves a single account by ID.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccountsByCompany retrieves the full chart of accounts of a company.
	ListAccountsByCompany(ctx context.Context, companyID string) ([]domain.Account, error)

	// FindAccountsByCodes resolves well-known account codes to accounts for a
	// company, keyed by code.
	FindAccountsByCodes(ctx context.Context, companyID string, codes []string) (map[string]domain.Account, error)
}

// AccountWriter defines write operations for chart-of-accounts data.
type AccountWriter interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	UpdateAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines all account repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
