package repositories

import (
	"context"
	"time"

	"github.com/velorapos/velora_backend/internal/core/domain"
)

// RegisterTokenRepositoryFacade defines persistence for POS terminal tokens.
type RegisterTokenRepositoryFacade interface {
	SaveToken(ctx context.Context, token domain.RegisterToken) error
	FindTokenByHash(ctx context.Context, tokenHash string) (*domain.RegisterToken, error)
	ListTokensByUser(ctx context.Context, userID string) ([]domain.RegisterToken, error)
	TouchLastUsed(ctx context.Context, tokenID string, usedAt time.Time) error
	RevokeToken(ctx context.Context, tokenID string, revokedAt time.Time) error
}
