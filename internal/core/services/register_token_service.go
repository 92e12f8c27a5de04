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
	"github.com/velorapos/velora_backend/internal/utils"
)

var ErrTokenUnusable = errors.New("register token is expired or revoked")

// registerTokenService authenticates POS terminals. The raw token is handed
// out exactly once at creation; only its SHA-256 hash is stored, so lookup by
// hash stays a single indexed query.
type registerTokenService struct {
	BaseService
	tokenRepo portsrepo.RegisterTokenRepositoryFacade
}

// NewRegisterTokenService creates the register token service.
func NewRegisterTokenService(tokenRepo portsrepo.RegisterTokenRepositoryFacade, authorizer portssvc.CompanyAuthorizerSvc) portssvc.RegisterTokenSvc {
	return &registerTokenService{
		BaseService: BaseService{CompanyAuthorizer: authorizer},
		tokenRepo:   tokenRepo,
	}
}

var _ portssvc.RegisterTokenSvc = (*registerTokenService)(nil)

// CreateToken mints a new register token for a terminal. The response is the
// only place the raw token value ever appears.
func (s *registerTokenService) CreateToken(ctx context.Context, userID, companyID string, req dto.CreateRegisterTokenRequest) (*dto.RegisterTokenResponse, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	raw, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to generate register token", err)
	}

	now := time.Now().UTC()
	token := domain.RegisterToken{
		TokenID:   uuid.NewString(),
		UserID:    userID,
		CompanyID: companyID,
		Name:      req.Name,
		TokenHash: utils.HashRegisterToken(raw),
		ExpiresAt: req.ExpiresAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.tokenRepo.SaveToken(ctx, token); err != nil {
		s.LogError(ctx, err, "failed to save register token", slog.String("name", req.Name))
		return nil, err
	}
	s.LogInfo(ctx, "register token created",
		slog.String("token_id", token.TokenID),
		slog.String("name", req.Name))
	return &dto.RegisterTokenResponse{
		TokenID:   token.TokenID,
		Name:      token.Name,
		Token:     raw,
		ExpiresAt: token.ExpiresAt,
	}, nil
}

// ValidateToken resolves a raw token to the user it acts as, stamping last
// use on success.
func (s *registerTokenService) ValidateToken(ctx context.Context, rawToken string) (string, error) {
	token, err := s.tokenRepo.FindTokenByHash(ctx, utils.HashRegisterToken(rawToken))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrForbidden
		}
		return "", err
	}
	if !token.IsUsable(time.Now().UTC()) {
		return "", fmt.Errorf("%w: %s", apperrors.ErrForbidden, ErrTokenUnusable)
	}
	if err := s.tokenRepo.TouchLastUsed(ctx, token.TokenID, time.Now().UTC()); err != nil {
		// Best effort; an authentication must not fail on the stamp.
		s.LogDebug(ctx, "failed to stamp register token last use",
			slog.String("token_id", token.TokenID))
	}
	return token.UserID, nil
}

// ListTokens returns the register tokens a user has created.
func (s *registerTokenService) ListTokens(ctx context.Context, userID string) ([]domain.RegisterToken, error) {
	return s.tokenRepo.ListTokensByUser(ctx, userID)
}

// RevokeToken permanently disables a token the user owns.
func (s *registerTokenService) RevokeToken(ctx context.Context, userID, tokenID string) error {
	tokens, err := s.tokenRepo.ListTokensByUser(ctx, userID)
	if err != nil {
		return err
	}
	for _, t := range tokens {
		if t.TokenID == tokenID {
			return s.tokenRepo.RevokeToken(ctx, tokenID, time.Now().UTC())
		}
	}
	return apperrors.ErrNotFound
}
