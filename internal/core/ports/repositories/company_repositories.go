package repositories

import (
	"context"

	"github.com/velorapos/velora_backend/internal/core/domain"
)

// CompanyReader defines read operations for company data.
type CompanyReader interface {
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// FindUserCompanyRole returns the role the user holds in the company, or
	// ErrNotFound when the user is not a member.
	FindUserCompanyRole(ctx context.Context, userID, companyID string) (domain.UserCompanyRole, error)
}

// CompanyWriter defines write operations for company data.
type CompanyWriter interface {
	SaveCompany(ctx context.Context, company domain.Company) error
	AddUserToCompany(ctx context.Context, userID, companyID string, role domain.UserCompanyRole, addedByUserID string) error
}

// CompanyRepositoryFacade combines all company repository interfaces.
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}
