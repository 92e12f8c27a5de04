package dto

import (
	"github.com/velorapos/velora_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateVariantRequest registers a product variant with its unit metadata.
type CreateVariantRequest struct {
	ProductID        string          `json:"productID" binding:"required"`
	Name             string          `json:"name" binding:"required"`
	SKU              string          `json:"sku,omitempty"`
	UnitSymbol       string          `json:"unitSymbol" binding:"required"`
	ConversionFactor decimal.Decimal `json:"conversionFactor,omitempty"`
}

// VariantResponse is the wire shape of a variant, including derived figures.
type VariantResponse struct {
	VariantID        string          `json:"variantID"`
	ProductID        string          `json:"productID"`
	Name             string          `json:"name"`
	SKU              string          `json:"sku,omitempty"`
	UnitSymbol       string          `json:"unitSymbol"`
	ConversionFactor decimal.Decimal `json:"conversionFactor"`
	PMP              decimal.Decimal `json:"pmp"`
	IsActive         bool            `json:"isActive"`
}

// UpdatePMPRequest folds one priced inbound movement into a variant's
// weighted-average cost.
type UpdatePMPRequest struct {
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
	UnitCost decimal.Decimal `json:"unitCost" binding:"required"`
}

// VariantStockResponse reports the replay-derived on-hand quantity.
type VariantStockResponse struct {
	VariantID string          `json:"variantID"`
	Stock     decimal.Decimal `json:"stock"`
}

// VariantPMPResponse reports the cached weighted-average unit cost.
type VariantPMPResponse struct {
	VariantID string          `json:"variantID"`
	PMP       decimal.Decimal `json:"pmp"`
}

// ToVariantResponse converts a domain variant to its wire shape.
func ToVariantResponse(v *domain.ProductVariant) VariantResponse {
	return VariantResponse{
		VariantID:        v.VariantID,
		ProductID:        v.ProductID,
		Name:             v.Name,
		SKU:              v.SKU,
		UnitSymbol:       v.UnitSymbol,
		ConversionFactor: v.ConversionFactor,
		PMP:              v.PMP,
		IsActive:         v.IsActive,
	}
}
