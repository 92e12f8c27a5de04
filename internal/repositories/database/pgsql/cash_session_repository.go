package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velorapos/velora_backend/internal/apperrors"
	"github.com/velorapos/velora_backend/internal/core/domain"
	portsrepo "github.com/velorapos/velora_backend/internal/core/ports/repositories"
	"github.com/velorapos/velora_backend/internal/models"
	"github.com/velorapos/velora_backend/internal/utils/mapping"
)

type PgxCashSessionRepository struct {
	BaseRepository
}

// newPgxCashSessionRepository creates a new repository for register sessions.
func newPgxCashSessionRepository(pool *pgxpool.Pool) portsrepo.CashSessionRepositoryFacade {
	return &PgxCashSessionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CashSessionRepositoryFacade = (*PgxCashSessionRepository)(nil)

const cashSessionColumns = `
	session_id, company_id, point_of_sale_id, user_id, status,
	opening_amount, expected_amount, declared_amount, deviation,
	opened_at, closed_at, created_at, created_by, last_updated_at, last_updated_by`

func scanCashSession(row pgx.Row) (models.CashSession, error) {
	var m models.CashSession
	err := row.Scan(
		&m.SessionID,
		&m.CompanyID,
		&m.PointOfSaleID,
		&m.UserID,
		&m.Status,
		&m.OpeningAmount,
		&m.ExpectedAmount,
		&m.DeclaredAmount,
		&m.Deviation,
		&m.OpenedAt,
		&m.ClosedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindSessionByID retrieves a cash session by its ID.
func (r *PgxCashSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.CashSession, error) {
	query := `SELECT ` + cashSessionColumns + ` FROM cash_sessions WHERE session_id = $1;`
	m, err := scanCashSession(r.Pool.QueryRow(ctx, query, sessionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewStorageError("failed to find cash session "+sessionID, err)
	}
	d := mapping.ToDomainCashSession(m)
	return &d, nil
}

// FindOpenSessionByPointOfSale retrieves the open session of a register.
// A partial unique index guarantees at most one open session per register.
func (r *PgxCashSessionRepository) FindOpenSessionByPointOfSale(ctx context.Context, companyID, pointOfSaleID string) (*domain.CashSession, error) {
	query := `
		SELECT ` + cashSessionColumns + `
		FROM cash_sessions
		WHERE company_id = $1 AND point_of_sale_id = $2 AND status = 'OPEN' AND closed_at IS NULL;
	`
	m, err := scanCashSession(r.Pool.QueryRow(ctx, query, companyID, pointOfSaleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewStorageError("failed to find open session for register "+pointOfSaleID, err)
	}
	d := mapping.ToDomainCashSession(m)
	return &d, nil
}

// SaveSession inserts a new cash session.
func (r *PgxCashSessionRepository) SaveSession(ctx context.Context, session domain.CashSession) error {
	m := mapping.ToModelCashSession(session)
	query := `
		INSERT INTO cash_sessions (` + cashSessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.SessionID, m.CompanyID, m.PointOfSaleID, m.UserID, m.Status,
		m.OpeningAmount, m.ExpectedAmount, m.DeclaredAmount, m.Deviation,
		m.OpenedAt, m.ClosedAt, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewStorageError("failed to insert cash session "+m.SessionID, err)
	}
	return nil
}

// CloseSession stamps the close amounts on an open session. The status guard
// in the WHERE clause makes a double close surface as ErrState.
func (r *PgxCashSessionRepository) CloseSession(ctx context.Context, session domain.CashSession) error {
	m := mapping.ToModelCashSession(session)
	query := `
		UPDATE cash_sessions
		SET status = $2, expected_amount = $3, declared_amount = $4, deviation = $5,
		    closed_at = $6, last_updated_at = $7, last_updated_by = $8
		WHERE session_id = $1 AND status = 'OPEN';
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.SessionID, m.Status, m.ExpectedAmount, m.DeclaredAmount, m.Deviation,
		m.ClosedAt, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewStorageError("failed to close cash session "+m.SessionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrState
	}
	return nil
}
