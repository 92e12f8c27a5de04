package services

import (
	"context"
	"time"

	"github.com/velorapos/velora_backend/internal/core/domain"
	portssvc "github.com/velorapos/velora_backend/internal/core/ports/services"
	"github.com/velorapos/velora_backend/internal/dto"
	"github.com/velorapos/velora_backend/internal/platform/config"
	"github.com/velorapos/velora_backend/internal/utils"
)

// authService issues JWT access tokens for web admin users.
type authService struct {
	BaseService
	cfg     *config.Config
	userSvc portssvc.UserSvcFacade
}

// NewAuthService creates the JWT auth service.
func NewAuthService(cfg *config.Config, userSvc portssvc.UserSvcFacade) portssvc.AuthSvcFacade {
	return &authService{
		cfg:     cfg,
		userSvc: userSvc,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies credentials and returns a signed access token.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userSvc.AuthenticateUser(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	token, err := s.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   time.Now().Add(s.cfg.JWTExpiryDuration),
		User:        dto.ToUserResponse(user),
	}, nil
}

// GenerateAccessToken signs a JWT for the user.
func (s *authService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, error) {
	return utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
}
