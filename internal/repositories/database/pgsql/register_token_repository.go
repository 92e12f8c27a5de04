package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velorapos/velora_backend/internal/apperrors"
	"github.com/velorapos/velora_backend/internal/core/domain"
	portsrepo "github.com/velorapos/velora_backend/internal/core/ports/repositories"
	"github.com/velorapos/velora_backend/internal/models"
	"github.com/velorapos/velora_backend/internal/utils/mapping"
)

type PgxRegisterTokenRepository struct {
	BaseRepository
}

// newPgxRegisterTokenRepository creates a new repository for register tokens.
func newPgxRegisterTokenRepository(pool *pgxpool.Pool) portsrepo.RegisterTokenRepositoryFacade {
	return &PgxRegisterTokenRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RegisterTokenRepositoryFacade = (*PgxRegisterTokenRepository)(nil)

const registerTokenColumns = `
	token_id, user_id, company_id, name, token_hash, last_used_at, expires_at, revoked_at,
	created_at, created_by, last_updated_at, last_updated_by`

func scanRegisterToken(row pgx.Row) (models.RegisterToken, error) {
	var m models.RegisterToken
	err := row.Scan(
		&m.TokenID,
		&m.UserID,
		&m.CompanyID,
		&m.Name,
		&m.TokenHash,
		&m.LastUsedAt,
		&m.ExpiresAt,
		&m.RevokedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveToken inserts a new register token.
func (r *PgxRegisterTokenRepository) SaveToken(ctx context.Context, token domain.RegisterToken) error {
	m := mapping.ToModelRegisterToken(token)
	query := `
		INSERT INTO register_tokens (` + registerTokenColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TokenID, m.UserID, m.CompanyID, m.Name, m.TokenHash, m.LastUsedAt, m.ExpiresAt, m.RevokedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewStorageError("failed to insert register token "+m.TokenID, err)
	}
	return nil
}

// FindTokenByHash retrieves a register token by the hash of its raw value.
func (r *PgxRegisterTokenRepository) FindTokenByHash(ctx context.Context, tokenHash string) (*domain.RegisterToken, error) {
	query := `SELECT ` + registerTokenColumns + ` FROM register_tokens WHERE token_hash = $1;`
	m, err := scanRegisterToken(r.Pool.QueryRow(ctx, query, tokenHash))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewStorageError("failed to find register token by hash", err)
	}
	d := mapping.ToDomainRegisterToken(m)
	return &d, nil
}

// ListTokensByUser retrieves all register tokens created by a user.
func (r *PgxRegisterTokenRepository) ListTokensByUser(ctx context.Context, userID string) ([]domain.RegisterToken, error) {
	query := `SELECT ` + registerTokenColumns + ` FROM register_tokens WHERE user_id = $1 ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query register tokens for user "+userID, err)
	}
	defer rows.Close()

	tokens := []models.RegisterToken{}
	for rows.Next() {
		m, err := scanRegisterToken(rows)
		if err != nil {
			return nil, apperrors.NewStorageError("failed to scan register token row", err)
		}
		tokens = append(tokens, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("error iterating register token rows", err)
	}
	return mapping.ToDomainRegisterTokenSlice(tokens), nil
}

// TouchLastUsed stamps the last successful authentication time.
func (r *PgxRegisterTokenRepository) TouchLastUsed(ctx context.Context, tokenID string, usedAt time.Time) error {
	query := `UPDATE register_tokens SET last_used_at = $2 WHERE token_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, tokenID, usedAt)
	if err != nil {
		return apperrors.NewStorageError("failed to touch register token "+tokenID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// RevokeToken permanently disables a register token.
func (r *PgxRegisterTokenRepository) RevokeToken(ctx context.Context, tokenID string, revokedAt time.Time) error {
	query := `UPDATE register_tokens SET revoked_at = $2 WHERE token_id = $1 AND revoked_at IS NULL;`
	cmdTag, err := r.Pool.Exec(ctx, query, tokenID, revokedAt)
	if err != nil {
		return apperrors.NewStorageError("failed to revoke register token "+tokenID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
