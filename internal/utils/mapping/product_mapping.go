package mapping

import (
	"github.com/velorapos/velora_backend/internal/core/domain"
	"github.com/velorapos/velora_backend/internal/models"
)

// ToModelProductVariant converts a domain ProductVariant to a model ProductVariant
func ToModelProductVariant(d domain.ProductVariant) models.ProductVariant {
	return models.ProductVariant{
		VariantID:        d.VariantID,
		ProductID:        d.ProductID,
		CompanyID:        d.CompanyID,
		SKU:              d.SKU,
		Name:             d.Name,
		UnitSymbol:       d.UnitSymbol,
		ConversionFactor: d.ConversionFactor,
		PMP:              d.PMP,
		IsActive:         d.IsActive,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProductVariant converts a model ProductVariant to a domain ProductVariant
func ToDomainProductVariant(m models.ProductVariant) domain.ProductVariant {
	return domain.ProductVariant{
		VariantID:        m.VariantID,
		ProductID:        m.ProductID,
		CompanyID:        m.CompanyID,
		SKU:              m.SKU,
		Name:             m.Name,
		UnitSymbol:       m.UnitSymbol,
		ConversionFactor: m.ConversionFactor,
		PMP:              m.PMP,
		IsActive:         m.IsActive,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProductVariantSlice converts a slice of model ProductVariants to a slice of domain ProductVariants
func ToDomainProductVariantSlice(ms []models.ProductVariant) []domain.ProductVariant {
	ds := make([]domain.ProductVariant, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProductVariant(m)
	}
	return ds
}
