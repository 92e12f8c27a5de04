package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/velorapos/velora_backend/internal/apperrors"
	"github.com/velorapos/velora_backend/internal/core/domain"
	portsrepo "github.com/velorapos/velora_backend/internal/core/ports/repositories"
	"github.com/velorapos/velora_backend/internal/models"
	"github.com/velorapos/velora_backend/internal/utils/mapping"
)

type PgxVariantRepository struct {
	BaseRepository
}

// newPgxVariantRepository creates a new repository for product variant data.
func newPgxVariantRepository(pool *pgxpool.Pool) portsrepo.VariantRepositoryFacade {
	return &PgxVariantRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.VariantRepositoryFacade = (*PgxVariantRepository)(nil)

const variantColumns = `
	variant_id, product_id, company_id, sku, name, unit_symbol,
	conversion_factor, pmp, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanVariant(row pgx.Row) (models.ProductVariant, error) {
	var m models.ProductVariant
	err := row.Scan(
		&m.VariantID,
		&m.ProductID,
		&m.CompanyID,
		&m.SKU,
		&m.Name,
		&m.UnitSymbol,
		&m.ConversionFactor,
		&m.PMP,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindVariantByID retrieves a variant by its ID.
func (r *PgxVariantRepository) FindVariantByID(ctx context.Context, variantID string) (*domain.ProductVariant, error) {
	query := `SELECT ` + variantColumns + ` FROM product_variants WHERE variant_id = $1;`
	m, err := scanVariant(r.Pool.QueryRow(ctx, query, variantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewStorageError("failed to find variant "+variantID, err)
	}
	d := mapping.ToDomainProductVariant(m)
	return &d, nil
}

// FindVariantsByIDs retrieves multiple variants keyed by ID. Missing IDs are
// absent from the result.
func (r *PgxVariantRepository) FindVariantsByIDs(ctx context.Context, variantIDs []string) (map[string]domain.ProductVariant, error) {
	query := `SELECT ` + variantColumns + ` FROM product_variants WHERE variant_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, variantIDs)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query variants by IDs", err)
	}
	defer rows.Close()

	result := make(map[string]domain.ProductVariant, len(variantIDs))
	for rows.Next() {
		m, err := scanVariant(rows)
		if err != nil {
			return nil, apperrors.NewStorageError("failed to scan variant row", err)
		}
		result[m.VariantID] = mapping.ToDomainProductVariant(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("error iterating variant rows", err)
	}
	return result, nil
}

// ListVariantsByCompany retrieves every active variant of a company.
func (r *PgxVariantRepository) ListVariantsByCompany(ctx context.Context, companyID string) ([]domain.ProductVariant, error) {
	query := `SELECT ` + variantColumns + ` FROM product_variants WHERE company_id = $1 AND is_active ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query variants for company "+companyID, err)
	}
	defer rows.Close()

	variants := []models.ProductVariant{}
	for rows.Next() {
		m, err := scanVariant(rows)
		if err != nil {
			return nil, apperrors.NewStorageError("failed to scan variant row", err)
		}
		variants = append(variants, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("error iterating variant rows", err)
	}
	return mapping.ToDomainProductVariantSlice(variants), nil
}

// SaveVariant inserts a new variant.
func (r *PgxVariantRepository) SaveVariant(ctx context.Context, variant domain.ProductVariant) error {
	m := mapping.ToModelProductVariant(variant)
	query := `
		INSERT INTO product_variants (` + variantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.VariantID, m.ProductID, m.CompanyID, m.SKU, m.Name, m.UnitSymbol,
		m.ConversionFactor, m.PMP, m.IsActive, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewStorageError("failed to insert variant "+m.VariantID, err)
	}
	return nil
}

// UpdateVariantPMP overwrites the cached weighted-average cost of a variant.
func (r *PgxVariantRepository) UpdateVariantPMP(ctx context.Context, variantID string, pmp decimal.Decimal, updatedByUserID string, updatedAt time.Time) error {
	query := `
		UPDATE product_variants
		SET pmp = $2, last_updated_at = $3, last_updated_by = $4
		WHERE variant_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, variantID, pmp, updatedAt, updatedByUserID)
	if err != nil {
		return apperrors.NewStorageError("failed to update PMP for variant "+variantID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
