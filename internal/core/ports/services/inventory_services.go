package services

import (
	"context"

	"github.com/velorapos/velora_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StockReaderSvc answers "how much is on hand" by replaying confirmed lines.
type StockReaderSvc interface {
	// GetVariantStock computes current on-hand base quantity for a variant.
	GetVariantStock(ctx context.Context, variantID string) (decimal.Decimal, error)

	// GetVariantPMP returns the variant's cached weighted-average unit cost.
	GetVariantPMP(ctx context.Context, variantID string) (decimal.Decimal, error)
}

// CostAveragerSvc maintains the running weighted-average unit cost.
type CostAveragerSvc interface {
	// UpdatePMP folds one inbound movement into the variant's weighted
	// average and persists the new value. Returns the new PMP.
	UpdatePMP(ctx context.Context, variantID string, incomingQty, incomingUnitCost decimal.Decimal, userID string) (decimal.Decimal, error)
}

// StockReconcilerSvc recomputes cached values from scratch for drift detection.
type StockReconcilerSvc interface {
	ReconcileVariant(ctx context.Context, variantID string) (*domain.VariantReconciliation, error)
}

// InventorySvcFacade combines the stock aggregator and cost averager.
type InventorySvcFacade interface {
	StockReaderSvc
	CostAveragerSvc
	StockReconcilerSvc
}
