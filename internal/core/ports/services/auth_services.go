package services

import (
	"context"

	"github.com/velorapos/velora_backend/internal/core/domain"
	"github.com/velorapos/velora_backend/internal/dto"
)

// AuthSvcFacade issues and refreshes JWT access tokens for web admin users.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, error)
}

// RegisterTokenSvc authenticates POS terminals via API tokens.
type RegisterTokenSvc interface {
	CreateToken(ctx context.Context, userID, companyID string, req dto.CreateRegisterTokenRequest) (*dto.RegisterTokenResponse, error)
	ValidateToken(ctx context.Context, rawToken string) (string, error) // returns userID
	ListTokens(ctx context.Context, userID string) ([]domain.RegisterToken, error)
	RevokeToken(ctx context.Context, userID, tokenID string) error
}
