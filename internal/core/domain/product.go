package domain

import "github.com/shopspring/decimal"

// ProductVariant is a sellable/purchasable unit of a product. PMP is the only
// mutable derived field on it: a weighted-average unit cost maintained by the
// cost averager, treated as a cache reconstructible from the transaction log.
type ProductVariant struct {
	VariantID        string          `json:"variantID"`
	ProductID        string          `json:"productID"`
	CompanyID        string          `json:"companyID"`
	Name             string          `json:"name"`
	SKU              string          `json:"sku,omitempty"`
	UnitSymbol       string          `json:"unitSymbol"`
	ConversionFactor decimal.Decimal `json:"conversionFactor"`
	PMP              decimal.Decimal `json:"pmp"`
	IsActive         bool            `json:"isActive"`
	AuditFields
}

// VariantReconciliation compares the cached stock/PMP of a variant against a
// full replay of the transaction log, for drift detection.
type VariantReconciliation struct {
	VariantID      string          `json:"variantID"`
	CachedPMP      decimal.Decimal `json:"cachedPmp"`
	ReplayedPMP    decimal.Decimal `json:"replayedPmp"`
	ReplayedStock  decimal.Decimal `json:"replayedStock"`
	PMPDrift       decimal.Decimal `json:"pmpDrift"`
	DriftDetected  bool            `json:"driftDetected"`
	InboundLines   int             `json:"inboundLines"`
	OutboundLines  int             `json:"outboundLines"`
}
