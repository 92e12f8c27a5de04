package repositories

import (
	"context"
	"time"

	"github.com/velorapos/velora_backend/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a user by ID, soft-deleted users included.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email for authentication.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers retrieves a page of non-deleted users.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	SaveUser(ctx context.Context, user domain.User) error
	UpdateUser(ctx context.Context, user domain.User) error

	// MarkUserDeleted soft-deletes a user, making it inactive for ledger writes.
	MarkUserDeleted(ctx context.Context, userID string, deletedByUserID string, deletedAt time.Time) error
}

// UserRepositoryFacade combines all user repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
