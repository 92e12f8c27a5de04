package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/velorapos/velora_backend/internal/core/domain"
	portsrepo "github.com/velorapos/velora_backend/internal/core/ports/repositories"
	portssvc "github.com/velorapos/velora_backend/internal/core/ports/services"
	"github.com/velorapos/velora_backend/internal/utils/accounting"
	"github.com/velorapos/velora_backend/pkg/cache"
)

// inventoryService answers stock and cost questions by replaying the
// confirmed transaction log. Stock is always derived; PMP is a cached running
// value on the variant, reconstructible from the same log.
type inventoryService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepositoryWithTx
	variantRepo portsrepo.VariantRepositoryFacade
	stockCache  *cache.StockCache
}

// NewInventoryService creates the stock aggregator / cost averager.
func NewInventoryService(
	txnRepo portsrepo.TransactionRepositoryWithTx,
	variantRepo portsrepo.VariantRepositoryFacade,
	authorizer portssvc.CompanyAuthorizerSvc,
	stockCache *cache.StockCache,
) portssvc.InventorySvcFacade {
	return &inventoryService{
		BaseService: BaseService{CompanyAuthorizer: authorizer},
		txnRepo:     txnRepo,
		variantRepo: variantRepo,
		stockCache:  stockCache,
	}
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

// GetVariantStock computes current on-hand base quantity for a variant,
// serving from the cache when warm.
func (s *inventoryService) GetVariantStock(ctx context.Context, variantID string) (decimal.Decimal, error) {
	if stock, ok := s.stockCache.GetStock(ctx, variantID); ok {
		return stock, nil
	}
	stock, err := s.txnRepo.SumVariantStock(ctx, variantID)
	if err != nil {
		return decimal.Zero, err
	}
	s.stockCache.SetStock(ctx, variantID, stock)
	return stock, nil
}

// GetVariantPMP returns the variant's cached weighted-average unit cost.
func (s *inventoryService) GetVariantPMP(ctx context.Context, variantID string) (decimal.Decimal, error) {
	variant, err := s.variantRepo.FindVariantByID(ctx, variantID)
	if err != nil {
		return decimal.Zero, err
	}
	return variant.PMP, nil
}

// UpdatePMP folds one inbound movement into the variant's weighted average
// and persists the new value. The normal write path does this inside the
// ledger's DB transaction; this entry point exists for corrections and
// backfills that arrive outside it.
func (s *inventoryService) UpdatePMP(ctx context.Context, variantID string, incomingQty, incomingUnitCost decimal.Decimal, userID string) (decimal.Decimal, error) {
	variant, err := s.variantRepo.FindVariantByID(ctx, variantID)
	if err != nil {
		return decimal.Zero, err
	}
	stock, err := s.txnRepo.SumVariantStock(ctx, variantID)
	if err != nil {
		return decimal.Zero, err
	}

	newPMP := accounting.WeightedAverageCost(stock, variant.PMP, incomingQty, incomingUnitCost)
	if err := s.variantRepo.UpdateVariantPMP(ctx, variantID, newPMP, userID, time.Now().UTC()); err != nil {
		return decimal.Zero, err
	}
	s.stockCache.Invalidate(ctx, variantID)

	s.LogInfo(ctx, "variant PMP updated",
		slog.String("variant_id", variantID),
		slog.String("old_pmp", variant.PMP.String()),
		slog.String("new_pmp", newPMP.String()))
	return newPMP, nil
}

// ReconcileVariant replays a variant's full confirmed history from scratch
// and compares the result against the cached PMP. A reported drift means the
// cache has diverged from the log, typically after cancellations of purchases,
// and tells the operator what the replayed truth is.
func (s *inventoryService) ReconcileVariant(ctx context.Context, variantID string) (*domain.VariantReconciliation, error) {
	variant, err := s.variantRepo.FindVariantByID(ctx, variantID)
	if err != nil {
		return nil, err
	}
	lines, types, err := s.txnRepo.ListConfirmedLinesByVariant(ctx, variantID)
	if err != nil {
		return nil, err
	}

	stock := decimal.Zero
	pmp := decimal.Zero
	inbound, outbound := 0, 0
	for i, line := range lines {
		switch {
		case types[i] == domain.Purchase:
			pmp = accounting.WeightedAverageCost(stock, pmp, line.QuantityInBase, line.CostingUnitCost())
			stock = stock.Add(line.QuantityInBase)
			inbound++
		case types[i].IsInbound():
			// Returns, incoming transfers and adjustments restock at the
			// standing average; only purchases move it.
			stock = stock.Add(line.QuantityInBase)
			inbound++
		case types[i].IsOutbound():
			// Outbound movements consume at the current average; the average
			// itself does not move.
			stock = stock.Sub(line.QuantityInBase)
			outbound++
		}
	}

	drift := variant.PMP.Sub(pmp)
	return &domain.VariantReconciliation{
		VariantID:     variantID,
		CachedPMP:     variant.PMP,
		ReplayedPMP:   pmp,
		ReplayedStock: stock,
		PMPDrift:      drift,
		DriftDetected: !drift.IsZero(),
		InboundLines:  inbound,
		OutboundLines: outbound,
	}, nil
}
