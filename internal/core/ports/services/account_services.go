package services

import (
	"context"

	"github.com/velorapos/velora_backend/internal/core/domain"
	"github.com/velorapos/velora_backend/internal/dto"
)

// AccountReaderSvc defines read operations for chart-of-accounts data.
type AccountReaderSvc interface {
	GetAccountByID(ctx context.Context, companyID string, accountID string, requestingUserID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, companyID string, requestingUserID string) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for chart-of-accounts data.
type AccountWriterSvc interface {
	CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)
}

// AccountSvcFacade combines all account service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
