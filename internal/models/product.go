package models

import "github.com/shopspring/decimal"

// ProductVariant is the database shape of a sellable variant.
// PMP is the weighted average cost maintained by confirmed inbound movements.
type ProductVariant struct {
	VariantID        string          `db:"variant_id"`
	ProductID        string          `db:"product_id"`
	CompanyID        string          `db:"company_id"`
	SKU              string          `db:"sku"`
	Name             string          `db:"name"`
	UnitSymbol       string          `db:"unit_symbol"`
	ConversionFactor decimal.Decimal `db:"conversion_factor"`
	PMP              decimal.Decimal `db:"pmp"`
	IsActive         bool            `db:"is_active"`
	AuditFields
}
