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

type PgxCompanyRepository struct {
	BaseRepository
}

// newPgxCompanyRepository creates a new repository for company data.
func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

const companyColumns = `
	company_id, name, tax_id, description, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

// FindCompanyByID retrieves a company by its ID.
func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE company_id = $1;`
	var m models.Company
	err := r.Pool.QueryRow(ctx, query, companyID).Scan(
		&m.CompanyID,
		&m.Name,
		&m.TaxID,
		&m.Description,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewStorageError("failed to find company "+companyID, err)
	}
	d := mapping.ToDomainCompany(m)
	return &d, nil
}

// FindUserCompanyRole returns the role the user holds in the company.
func (r *PgxCompanyRepository) FindUserCompanyRole(ctx context.Context, userID, companyID string) (domain.UserCompanyRole, error) {
	query := `SELECT role FROM user_companies WHERE user_id = $1 AND company_id = $2;`
	var role string
	err := r.Pool.QueryRow(ctx, query, userID, companyID).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.NewStorageError("failed to find role for user "+userID+" in company "+companyID, err)
	}
	return domain.UserCompanyRole(role), nil
}

// SaveCompany inserts a new company.
func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	m := mapping.ToModelCompany(company)
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CompanyID, m.Name, m.TaxID, m.Description, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewStorageError("failed to insert company "+m.CompanyID, err)
	}
	return nil
}

// AddUserToCompany links a user to a company with a role.
func (r *PgxCompanyRepository) AddUserToCompany(ctx context.Context, userID, companyID string, role domain.UserCompanyRole, addedByUserID string) error {
	now := time.Now().UTC()
	query := `
		INSERT INTO user_companies (user_id, company_id, role, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query, userID, companyID, string(role), now, addedByUserID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewStorageError("failed to add user "+userID+" to company "+companyID, err)
	}
	return nil
}
