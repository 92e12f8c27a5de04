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

// accountService manages the chart of accounts: static reference data that
// the ledger replay resolves postings against.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates the account directory service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, authorizer portssvc.CompanyAuthorizerSvc) portssvc.AccountSvcFacade {
	return &accountService{
		BaseService: BaseService{CompanyAuthorizer: authorizer},
		accountRepo: accountRepo,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount adds a node to the chart of accounts.
func (s *accountService) CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, companyID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.Type)
	}
	if req.ParentAccountID != nil {
		parent, err := s.accountRepo.FindAccountByID(ctx, *req.ParentAccountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: parent account %s not found", apperrors.ErrReference, *req.ParentAccountID)
			}
			return nil, err
		}
		if parent.CompanyID != companyID {
			return nil, fmt.Errorf("%w: parent account %s not found", apperrors.ErrReference, *req.ParentAccountID)
		}
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		CompanyID:       companyID,
		Code:            req.Code,
		Name:            req.Name,
		Type:            req.Type,
		ParentAccountID: req.ParentAccountID,
		Description:     req.Description,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "failed to create account",
			slog.String("company_id", companyID),
			slog.String("code", req.Code))
		return nil, err
	}
	return &account, nil
}

// GetAccountByID retrieves a company's account.
func (s *accountService) GetAccountByID(ctx context.Context, companyID string, accountID string, requestingUserID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return account, nil
}

// ListAccounts retrieves the full chart of accounts of a company.
func (s *accountService) ListAccounts(ctx context.Context, companyID string, requestingUserID string) ([]domain.Account, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.accountRepo.ListAccountsByCompany(ctx, companyID)
}
