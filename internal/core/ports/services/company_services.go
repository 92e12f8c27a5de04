package services

import (
	"context"

	"github.com/velorapos/velora_backend/internal/core/domain"
	"github.com/velorapos/velora_backend/internal/dto"
)

// CompanyAuthorizerSvc checks that a user may act within a company. Injected
// into every company-scoped service.
type CompanyAuthorizerSvc interface {
	AuthorizeUserAction(ctx context.Context, userID, companyID string, requiredRole domain.UserCompanyRole) error
}

// CompanyReaderSvc defines read operations for company data.
type CompanyReaderSvc interface {
	GetCompanyByID(ctx context.Context, companyID string, requestingUserID string) (*domain.Company, error)
}

// CompanyWriterSvc defines write operations for company data.
type CompanyWriterSvc interface {
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error)
}

// CompanySvcFacade combines all company service interfaces.
type CompanySvcFacade interface {
	CompanyAuthorizerSvc
	CompanyReaderSvc
	CompanyWriterSvc
}
