package services

import (
	"context"

	"github.com/velorapos/velora_backend/internal/core/domain"
	"github.com/velorapos/velora_backend/internal/dto"
)

// ProductSvcFacade manages product variants (the ledger core's view of them:
// unit metadata and the PMP cache).
type ProductSvcFacade interface {
	CreateVariant(ctx context.Context, companyID string, req dto.CreateVariantRequest, creatorUserID string) (*domain.ProductVariant, error)
	GetVariantByID(ctx context.Context, companyID string, variantID string, requestingUserID string) (*domain.ProductVariant, error)
	ListVariants(ctx context.Context, companyID string, requestingUserID string) ([]domain.ProductVariant, error)
}
