package repositories

import (
	"context"
	"time"

	"github.com/velorapos/velora_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VariantReader defines read operations for product variant data.
type VariantReader interface {
	// FindVariantByID retrieves a single variant by ID.
	FindVariantByID(ctx context.Context, variantID string) (*domain.ProductVariant, error)

	// FindVariantsByIDs retrieves multiple variants keyed by ID.
	FindVariantsByIDs(ctx context.Context, variantIDs []string) (map[string]domain.ProductVariant, error)

	// ListVariantsByCompany retrieves every active variant of a company.
	ListVariantsByCompany(ctx context.Context, companyID string) ([]domain.ProductVariant, error)
}

// VariantWriter defines write operations for product variant data. The cost
// averager is the only writer of PMP.
type VariantWriter interface {
	SaveVariant(ctx context.Context, variant domain.ProductVariant) error

	// UpdateVariantPMP overwrites the cached weighted-average cost of a variant.
	UpdateVariantPMP(ctx context.Context, variantID string, pmp decimal.Decimal, updatedByUserID string, updatedAt time.Time) error
}

// VariantRepositoryFacade combines all variant repository interfaces.
type VariantRepositoryFacade interface {
	VariantReader
	VariantWriter
}
