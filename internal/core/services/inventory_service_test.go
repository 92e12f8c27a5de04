package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/velorapos/velora_backend/internal/apperrors"
	"github.com/velorapos/velora_backend/internal/core/domain"
	portssvc "github.com/velorapos/velora_backend/internal/core/ports/services"
	"github.com/velorapos/velora_backend/internal/core/services"
	"github.com/velorapos/velora_backend/pkg/cache"
)

type InventoryServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockVariantRepo *MockVariantRepository
	mockAuthorizer  *MockCompanyAuthorizer
	service         portssvc.InventorySvcFacade
	ctx             context.Context

	variantID string
	userID    string
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockVariantRepo = new(MockVariantRepository)
	suite.mockAuthorizer = new(MockCompanyAuthorizer)
	suite.service = services.NewInventoryService(
		suite.mockTxnRepo,
		suite.mockVariantRepo,
		suite.mockAuthorizer,
		cache.NewStockCache(nil, 0),
	)
	suite.ctx = context.Background()

	suite.variantID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *InventoryServiceTestSuite) TestGetVariantStockReplaysLog() {
	suite.mockTxnRepo.On("SumVariantStock", suite.ctx, suite.variantID).
		Return(decimal.RequireFromString("42.5"), nil).Once()

	stock, err := suite.service.GetVariantStock(suite.ctx, suite.variantID)

	suite.NoError(err)
	suite.True(stock.Equal(decimal.RequireFromString("42.5")))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestGetVariantPMPUnknownVariant() {
	suite.mockVariantRepo.On("FindVariantByID", suite.ctx, suite.variantID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetVariantPMP(suite.ctx, suite.variantID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InventoryServiceTestSuite) TestUpdatePMPFoldsIncomingMovement() {
	suite.mockVariantRepo.On("FindVariantByID", suite.ctx, suite.variantID).
		Return(&domain.ProductVariant{
			VariantID: suite.variantID,
			PMP:       decimal.NewFromInt(100),
		}, nil).Once()
	suite.mockTxnRepo.On("SumVariantStock", suite.ctx, suite.variantID).
		Return(decimal.NewFromInt(10), nil).Once()

	// (10*100 + 10*200) / 20 = 150
	expected := decimal.NewFromInt(150)
	suite.mockVariantRepo.On("UpdateVariantPMP", suite.ctx, suite.variantID,
		mock.MatchedBy(func(pmp decimal.Decimal) bool { return pmp.Equal(expected) }),
		suite.userID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	newPMP, err := suite.service.UpdatePMP(suite.ctx, suite.variantID, decimal.NewFromInt(10), decimal.NewFromInt(200), suite.userID)

	suite.NoError(err)
	suite.True(newPMP.Equal(expected))
	suite.mockVariantRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestUpdatePMPFirstEverReceipt() {
	suite.mockVariantRepo.On("FindVariantByID", suite.ctx, suite.variantID).
		Return(&domain.ProductVariant{VariantID: suite.variantID, PMP: decimal.Zero}, nil).Once()
	suite.mockTxnRepo.On("SumVariantStock", suite.ctx, suite.variantID).
		Return(decimal.Zero, nil).Once()

	// Empty shelf: the incoming cost becomes the average outright.
	expected := decimal.RequireFromString("12.34")
	suite.mockVariantRepo.On("UpdateVariantPMP", suite.ctx, suite.variantID,
		mock.MatchedBy(func(pmp decimal.Decimal) bool { return pmp.Equal(expected) }),
		suite.userID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	newPMP, err := suite.service.UpdatePMP(suite.ctx, suite.variantID, decimal.NewFromInt(5), decimal.RequireFromString("12.34"), suite.userID)

	suite.NoError(err)
	suite.True(newPMP.Equal(expected))
}

func (suite *InventoryServiceTestSuite) TestReconcileVariantNoDrift() {
	suite.mockVariantRepo.On("FindVariantByID", suite.ctx, suite.variantID).
		Return(&domain.ProductVariant{
			VariantID: suite.variantID,
			PMP:       decimal.NewFromInt(150),
		}, nil).Once()

	qty := func(q int64) decimal.Decimal { return decimal.NewFromInt(q) }
	lines := []domain.TransactionLine{
		{QuantityInBase: qty(10), UnitCost: qty(100)},
		{QuantityInBase: qty(10), UnitCost: qty(200)},
		{QuantityInBase: qty(5), UnitPrice: qty(300)},
	}
	types := []domain.TransactionType{domain.Purchase, domain.Purchase, domain.Sale}
	suite.mockTxnRepo.On("ListConfirmedLinesByVariant", suite.ctx, suite.variantID).
		Return(lines, types, nil).Once()

	rec, err := suite.service.ReconcileVariant(suite.ctx, suite.variantID)

	suite.NoError(err)
	suite.Require().NotNil(rec)
	// Two receipts average to 150; the sale consumes 5 at that average.
	suite.True(rec.ReplayedPMP.Equal(qty(150)))
	suite.True(rec.ReplayedStock.Equal(qty(15)))
	suite.True(rec.PMPDrift.IsZero())
	suite.False(rec.DriftDetected)
	suite.Equal(2, rec.InboundLines)
	suite.Equal(1, rec.OutboundLines)
}

func (suite *InventoryServiceTestSuite) TestReconcileVariantDetectsDrift() {
	suite.mockVariantRepo.On("FindVariantByID", suite.ctx, suite.variantID).
		Return(&domain.ProductVariant{
			VariantID: suite.variantID,
			PMP:       decimal.NewFromInt(150),
		}, nil).Once()

	// The log only contains the cheap receipt; the cached average still
	// reflects a cancelled expensive one.
	lines := []domain.TransactionLine{
		{QuantityInBase: decimal.NewFromInt(10), UnitCost: decimal.NewFromInt(100)},
	}
	types := []domain.TransactionType{domain.Purchase}
	suite.mockTxnRepo.On("ListConfirmedLinesByVariant", suite.ctx, suite.variantID).
		Return(lines, types, nil).Once()

	rec, err := suite.service.ReconcileVariant(suite.ctx, suite.variantID)

	suite.NoError(err)
	suite.True(rec.ReplayedPMP.Equal(decimal.NewFromInt(100)))
	suite.True(rec.PMPDrift.Equal(decimal.NewFromInt(50)))
	suite.True(rec.DriftDetected)
}

func (suite *InventoryServiceTestSuite) TestReconcileVariantIgnoresNonPurchaseCosts() {
	suite.mockVariantRepo.On("FindVariantByID", suite.ctx, suite.variantID).
		Return(&domain.ProductVariant{
			VariantID: suite.variantID,
			PMP:       decimal.NewFromInt(100),
		}, nil).Once()

	// A sale return restocks units at the standing average no matter what it
	// was priced at; the cached value of 100 is therefore exact.
	lines := []domain.TransactionLine{
		{QuantityInBase: decimal.NewFromInt(10), UnitCost: decimal.NewFromInt(100)},
		{QuantityInBase: decimal.NewFromInt(5), UnitPrice: decimal.NewFromInt(300)},
	}
	types := []domain.TransactionType{domain.Purchase, domain.SaleReturn}
	suite.mockTxnRepo.On("ListConfirmedLinesByVariant", suite.ctx, suite.variantID).
		Return(lines, types, nil).Once()

	rec, err := suite.service.ReconcileVariant(suite.ctx, suite.variantID)

	suite.NoError(err)
	suite.Require().NotNil(rec)
	suite.True(rec.ReplayedPMP.Equal(decimal.NewFromInt(100)))
	suite.True(rec.ReplayedStock.Equal(decimal.NewFromInt(15)))
	suite.False(rec.DriftDetected)
	suite.Equal(2, rec.InboundLines)
	suite.Equal(0, rec.OutboundLines)
}

func (suite *InventoryServiceTestSuite) TestReconcileVariantFallsBackToUnitPrice() {
	suite.mockVariantRepo.On("FindVariantByID", suite.ctx, suite.variantID).
		Return(&domain.ProductVariant{VariantID: suite.variantID, PMP: decimal.NewFromInt(20)}, nil).Once()

	// A purchase recorded without an explicit cost is costed at its price.
	lines := []domain.TransactionLine{
		{QuantityInBase: decimal.NewFromInt(4), UnitPrice: decimal.NewFromInt(20)},
	}
	types := []domain.TransactionType{domain.Purchase}
	suite.mockTxnRepo.On("ListConfirmedLinesByVariant", suite.ctx, suite.variantID).
		Return(lines, types, nil).Once()

	rec, err := suite.service.ReconcileVariant(suite.ctx, suite.variantID)

	suite.NoError(err)
	suite.True(rec.ReplayedPMP.Equal(decimal.NewFromInt(20)))
	suite.False(rec.DriftDetected)
}

func TestInventoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
