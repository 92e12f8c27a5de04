package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/velorapos/velora_backend/internal/apperrors"
	"github.com/velorapos/velora_backend/internal/core/domain"
	portsrepo "github.com/velorapos/velora_backend/internal/core/ports/repositories"
	portssvc "github.com/velorapos/velora_backend/internal/core/ports/services"
	"github.com/velorapos/velora_backend/internal/dto"
)

// roleRank orders company roles for authorization checks.
var roleRank = map[domain.UserCompanyRole]int{
	domain.RoleReadOnly: 1,
	domain.RoleMember:   2,
	domain.RoleAdmin:    3,
}

// companyService manages companies and memberships, and is the authorizer
// every company-scoped service delegates to.
type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewCompanyService creates the company service.
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade) portssvc.CompanySvcFacade {
	return &companyService{
		companyRepo: companyRepo,
	}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

// AuthorizeUserAction checks that the user holds at least the required role in
// the company. Non-members read as not found, never as forbidden, so company
// existence does not leak.
func (s *companyService) AuthorizeUserAction(ctx context.Context, userID, companyID string, requiredRole domain.UserCompanyRole) error {
	role, err := s.companyRepo.FindUserCompanyRole(ctx, userID, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	if roleRank[role] < roleRank[requiredRole] {
		return fmt.Errorf("%w: role %s cannot perform this action", apperrors.ErrForbidden, role)
	}
	return nil
}

// CreateCompany registers a company and makes its creator the admin.
func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error) {
	now := time.Now().UTC()
	company := domain.Company{
		CompanyID:   uuid.NewString(),
		Name:        req.Name,
		TaxID:       req.TaxID,
		Description: req.Description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		s.LogError(ctx, err, "failed to create company", slog.String("name", req.Name))
		return nil, err
	}
	if err := s.companyRepo.AddUserToCompany(ctx, creatorUserID, company.CompanyID, domain.RoleAdmin, creatorUserID); err != nil {
		s.LogError(ctx, err, "failed to add creator to company",
			slog.String("company_id", company.CompanyID))
		return nil, err
	}
	s.LogInfo(ctx, "company created", slog.String("company_id", company.CompanyID))
	return &company, nil
}

// GetCompanyByID retrieves a company the user is a member of.
func (s *companyService) GetCompanyByID(ctx context.Context, companyID string, requestingUserID string) (*domain.Company, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.companyRepo.FindCompanyByID(ctx, companyID)
}
