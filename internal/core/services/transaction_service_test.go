package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/velorapos/velora_backend/internal/apperrors"
	"github.com/velorapos/velora_backend/internal/core/domain"
	portssvc "github.com/velorapos/velora_backend/internal/core/ports/services"
	"github.com/velorapos/velora_backend/internal/core/services"
	"github.com/velorapos/velora_backend/internal/dto"
	"github.com/velorapos/velora_backend/pkg/cache"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockVariantRepo *MockVariantRepository
	mockSessionRepo *MockCashSessionRepository
	mockUserRepo    *MockUserRepository
	mockAuthorizer  *MockCompanyAuthorizer
	service         portssvc.TransactionSvcFacade
	ctx             context.Context

	companyID string
	userID    string
	variantID string
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockVariantRepo = new(MockVariantRepository)
	suite.mockSessionRepo = new(MockCashSessionRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockAuthorizer = new(MockCompanyAuthorizer)
	suite.service = services.NewTransactionService(
		suite.mockTxnRepo,
		suite.mockVariantRepo,
		suite.mockSessionRepo,
		suite.mockUserRepo,
		suite.mockAuthorizer,
		cache.NewStockCache(nil, 0),
	)
	suite.ctx = context.Background()

	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.variantID = uuid.NewString()
}

func (suite *TransactionServiceTestSuite) activeUser() *domain.User {
	return &domain.User{UserID: suite.userID, Name: "Cashier", IsActive: true}
}

func (suite *TransactionServiceTestSuite) saleRequest() dto.CreateTransactionRequest {
	storageID := uuid.NewString()
	return dto.CreateTransactionRequest{
		Type:       domain.Sale,
		StorageID:  &storageID,
		AmountPaid: decimal.NewFromInt(50),
		Lines: []dto.CreateTransactionLineRequest{
			{
				ProductVariantID: &suite.variantID,
				Quantity:         decimal.NewFromInt(2),
				UnitPrice:        decimal.RequireFromString("19.99"),
			},
		},
	}
}

func (suite *TransactionServiceTestSuite) variantMap() map[string]domain.ProductVariant {
	return map[string]domain.ProductVariant{
		suite.variantID: {
			VariantID:        suite.variantID,
			CompanyID:        suite.companyID,
			ConversionFactor: decimal.NewFromInt(1),
			UnitSymbol:       "u",
		},
	}
}

func (suite *TransactionServiceTestSuite) TestCreateTransactionUnauthorized() {
	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.companyID, domain.RoleMember).
		Return(apperrors.ErrForbidden).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, suite.companyID, suite.saleRequest(), suite.userID)

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
	suite.mockAuthorizer.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransactionUnknownType() {
	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.companyID, domain.RoleMember).
		Return(nil).Once()

	req := suite.saleRequest()
	req.Type = domain.TransactionType("BARTER")

	txn, err := suite.service.CreateTransaction(suite.ctx, suite.companyID, req, suite.userID)

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransactionNoLines() {
	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.companyID, domain.RoleMember).
		Return(nil).Once()

	req := suite.saleRequest()
	req.Lines = nil

	txn, err := suite.service.CreateTransaction(suite.ctx, suite.companyID, req, suite.userID)

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransactionInactiveUser() {
	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.companyID, domain.RoleMember).
		Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", suite.ctx, suite.userID).
		Return(&domain.User{UserID: suite.userID, IsActive: false}, nil).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, suite.companyID, suite.saleRequest(), suite.userID)

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrState)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransactionMissingStorage() {
	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.companyID, domain.RoleMember).
		Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", suite.ctx, suite.userID).
		Return(suite.activeUser(), nil).Once()

	req := suite.saleRequest()
	req.StorageID = nil

	txn, err := suite.service.CreateTransaction(suite.ctx, suite.companyID, req, suite.userID)

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "storage")
}

func (suite *TransactionServiceTestSuite) TestCreateTransactionSessionClosed() {
	sessionID := uuid.NewString()
	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.companyID, domain.RoleMember).
		Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", suite.ctx, suite.userID).
		Return(suite.activeUser(), nil).Once()
	suite.mockSessionRepo.On("FindSessionByID", suite.ctx, sessionID).
		Return(&domain.CashSession{
			SessionID: sessionID,
			CompanyID: suite.companyID,
			Status:    domain.SessionClosed,
		}, nil).Once()

	req := suite.saleRequest()
	req.CashSessionID = &sessionID

	txn, err := suite.service.CreateTransaction(suite.ctx, suite.companyID, req, suite.userID)

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrState)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransactionSessionOtherCompany() {
	sessionID := uuid.NewString()
	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.companyID, domain.RoleMember).
		Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", suite.ctx, suite.userID).
		Return(suite.activeUser(), nil).Once()
	suite.mockSessionRepo.On("FindSessionByID", suite.ctx, sessionID).
		Return(&domain.CashSession{
			SessionID: sessionID,
			CompanyID: uuid.NewString(),
			Status:    domain.SessionOpen,
		}, nil).Once()

	req := suite.saleRequest()
	req.CashSessionID = &sessionID

	txn, err := suite.service.CreateTransaction(suite.ctx, suite.companyID, req, suite.userID)

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrReference)
}

func (suite *TransactionServiceTestSuite) TestCreateTransactionUnknownVariant() {
	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.companyID, domain.RoleMember).
		Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", suite.ctx, suite.userID).
		Return(suite.activeUser(), nil).Once()
	suite.mockVariantRepo.On("FindVariantsByIDs", suite.ctx, []string{suite.variantID}).
		Return(map[string]domain.ProductVariant{}, nil).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, suite.companyID, suite.saleRequest(), suite.userID)

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrReference)
}

func (suite *TransactionServiceTestSuite) TestCreateTransactionNonPositiveQuantity() {
	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.companyID, domain.RoleMember).
		Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", suite.ctx, suite.userID).
		Return(suite.activeUser(), nil).Once()
	suite.mockVariantRepo.On("FindVariantsByIDs", suite.ctx, []string{suite.variantID}).
		Return(suite.variantMap(), nil).Once()

	req := suite.saleRequest()
	req.Lines[0].Quantity = decimal.Zero

	txn, err := suite.service.CreateTransaction(suite.ctx, suite.companyID, req, suite.userID)

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "quantity")
}

func (suite *TransactionServiceTestSuite) TestCreateTransactionNegativeConversionFactor() {
	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.companyID, domain.RoleMember).
		Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", suite.ctx, suite.userID).
		Return(suite.activeUser(), nil).Once()
	suite.mockVariantRepo.On("FindVariantsByIDs", suite.ctx, []string{suite.variantID}).
		Return(suite.variantMap(), nil).Once()

	req := suite.saleRequest()
	req.Lines[0].ConversionFactor = decimal.NewFromInt(-12)

	_, err := suite.service.CreateTransaction(suite.ctx, suite.companyID, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransactionStorageFailureIsTyped() {
	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.companyID, domain.RoleMember).
		Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", suite.ctx, suite.userID).
		Return(suite.activeUser(), nil).Once()
	suite.mockVariantRepo.On("FindVariantsByIDs", suite.ctx, []string{suite.variantID}).
		Return(suite.variantMap(), nil).Once()

	suite.mockTxnRepo.On("SaveTransaction", suite.ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("[]domain.TransactionLine")).
		Return(nil, apperrors.NewStorageError("failed to insert transaction", errors.New("connection reset"))).Once()

	_, err := suite.service.CreateTransaction(suite.ctx, suite.companyID, suite.saleRequest(), suite.userID)

	// Callers deciding whether to retry need the persistence failure to keep
	// its type through the service layer.
	suite.ErrorIs(err, apperrors.ErrStorage)
}

func (suite *TransactionServiceTestSuite) TestCreateTransactionSuccess() {
	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.companyID, domain.RoleMember).
		Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", suite.ctx, suite.userID).
		Return(suite.activeUser(), nil).Once()
	suite.mockVariantRepo.On("FindVariantsByIDs", suite.ctx, []string{suite.variantID}).
		Return(suite.variantMap(), nil).Once()

	var savedTxn domain.Transaction
	var savedLines []domain.TransactionLine
	suite.mockTxnRepo.On("SaveTransaction", suite.ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("[]domain.TransactionLine")).
		Run(func(args mock.Arguments) {
			savedTxn = args.Get(1).(domain.Transaction)
			savedLines = args.Get(2).([]domain.TransactionLine)
		}).
		Return(&domain.Transaction{TransactionID: uuid.NewString(), DocumentNumber: "SAL-00000001", Type: domain.Sale}, nil).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, suite.companyID, suite.saleRequest(), suite.userID)

	suite.NoError(err)
	suite.NotNil(txn)
	suite.Equal("SAL-00000001", txn.DocumentNumber)

	suite.Equal(domain.Confirmed, savedTxn.Status)
	suite.Equal(suite.companyID, savedTxn.CompanyID)
	suite.True(savedTxn.Total.Equal(decimal.RequireFromString("39.98")))
	suite.True(savedTxn.Subtotal.Equal(decimal.RequireFromString("39.98")))
	// Paid 50 against 39.98, so 10.02 back.
	suite.True(savedTxn.ChangeAmount.Equal(decimal.RequireFromString("10.02")))
	suite.Equal(suite.userID, savedTxn.CreatedBy)

	suite.Require().Len(savedLines, 1)
	suite.Equal(1, savedLines[0].LineNumber)
	suite.True(savedLines[0].QuantityInBase.Equal(decimal.NewFromInt(2)))
	suite.Equal("u", savedLines[0].UnitSymbol)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransactionLineNumbersAreDense() {
	secondVariant := uuid.NewString()
	variants := suite.variantMap()
	variants[secondVariant] = domain.ProductVariant{
		VariantID:        secondVariant,
		CompanyID:        suite.companyID,
		ConversionFactor: decimal.NewFromInt(12),
		UnitSymbol:       "box",
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.companyID, domain.RoleMember).
		Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", suite.ctx, suite.userID).
		Return(suite.activeUser(), nil).Once()
	suite.mockVariantRepo.On("FindVariantsByIDs", suite.ctx, []string{suite.variantID, secondVariant}).
		Return(variants, nil).Once()

	var savedLines []domain.TransactionLine
	suite.mockTxnRepo.On("SaveTransaction", suite.ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("[]domain.TransactionLine")).
		Run(func(args mock.Arguments) {
			savedLines = args.Get(2).([]domain.TransactionLine)
		}).
		Return(&domain.Transaction{TransactionID: uuid.NewString(), DocumentNumber: "SAL-00000002"}, nil).Once()

	req := suite.saleRequest()
	req.Lines = append(req.Lines, dto.CreateTransactionLineRequest{
		ProductVariantID: &secondVariant,
		Quantity:         decimal.NewFromInt(3),
		UnitPrice:        decimal.NewFromInt(10),
	})

	_, err := suite.service.CreateTransaction(suite.ctx, suite.companyID, req, suite.userID)

	suite.NoError(err)
	suite.Require().Len(savedLines, 2)
	suite.Equal(1, savedLines[0].LineNumber)
	suite.Equal(2, savedLines[1].LineNumber)
	// The second line inherits the variant's conversion factor: 3 boxes of 12.
	suite.True(savedLines[1].QuantityInBase.Equal(decimal.NewFromInt(36)))
	suite.Equal("box", savedLines[1].UnitSymbol)
}

func (suite *TransactionServiceTestSuite) TestCancelTransactionSuccess() {
	originalID := uuid.NewString()
	original := &domain.Transaction{
		TransactionID: originalID,
		CompanyID:     suite.companyID,
		Type:          domain.Sale,
		Status:        domain.Confirmed,
		Total:         decimal.RequireFromString("39.98"),
		Subtotal:      decimal.RequireFromString("39.98"),
	}
	originalLines := []domain.TransactionLine{
		{
			LineID:           uuid.NewString(),
			TransactionID:    originalID,
			LineNumber:       1,
			ProductVariantID: &suite.variantID,
			Quantity:         decimal.NewFromInt(2),
			QuantityInBase:   decimal.NewFromInt(2),
			UnitPrice:        decimal.RequireFromString("19.99"),
		},
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.companyID, domain.RoleMember).
		Return(nil).Once()
	suite.mockTxnRepo.On("FindTransactionByID", suite.ctx, originalID).
		Return(original, nil).Once()
	suite.mockTxnRepo.On("FindLinesByTransactionID", suite.ctx, originalID).
		Return(originalLines, nil).Once()

	reversalID := uuid.NewString()
	var savedReversal domain.Transaction
	var savedLines []domain.TransactionLine
	suite.mockTxnRepo.On("SaveTransaction", suite.ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("[]domain.TransactionLine")).
		Run(func(args mock.Arguments) {
			savedReversal = args.Get(1).(domain.Transaction)
			savedLines = args.Get(2).([]domain.TransactionLine)
		}).
		Return(&domain.Transaction{
			TransactionID:        reversalID,
			DocumentNumber:       "SRT-00000001",
			Type:                 domain.SaleReturn,
			RelatedTransactionID: &originalID,
		}, nil).Once()

	var stampedMeta *domain.Metadata
	suite.mockTxnRepo.On("UpdateTransactionStatus", suite.ctx, originalID, domain.Cancelled, mock.AnythingOfType("*domain.Metadata"), suite.userID, mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			stampedMeta = args.Get(3).(*domain.Metadata)
		}).
		Return(nil).Once()

	reversal, err := suite.service.CancelTransaction(suite.ctx, suite.companyID, originalID, suite.userID, "wrong item scanned")

	suite.NoError(err)
	suite.Require().NotNil(reversal)
	suite.Equal("SRT-00000001", reversal.DocumentNumber)

	suite.Equal(domain.SaleReturn, savedReversal.Type)
	suite.Equal(domain.Confirmed, savedReversal.Status)
	suite.Require().NotNil(savedReversal.RelatedTransactionID)
	suite.Equal(originalID, *savedReversal.RelatedTransactionID)
	suite.True(savedReversal.Total.Equal(original.Total))

	suite.Require().Len(savedLines, 1)
	suite.NotEqual(originalLines[0].LineID, savedLines[0].LineID)
	suite.True(savedLines[0].Quantity.Equal(originalLines[0].Quantity))

	suite.Require().NotNil(stampedMeta)
	suite.Require().NotNil(stampedMeta.Cancellation)
	suite.Equal(reversalID, stampedMeta.Cancellation.ReversalTransactionID)
	suite.Equal("wrong item scanned", stampedMeta.Cancellation.Reason)
	suite.Equal(suite.userID, stampedMeta.Cancellation.CancelledBy)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCancelTransactionNotCancellable() {
	originalID := uuid.NewString()
	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.companyID, domain.RoleMember).
		Return(nil).Once()
	suite.mockTxnRepo.On("FindTransactionByID", suite.ctx, originalID).
		Return(&domain.Transaction{
			TransactionID: originalID,
			CompanyID:     suite.companyID,
			Type:          domain.PaymentIn,
			Status:        domain.Confirmed,
		}, nil).Once()

	reversal, err := suite.service.CancelTransaction(suite.ctx, suite.companyID, originalID, suite.userID, "oops")

	suite.Nil(reversal)
	suite.ErrorIs(err, apperrors.ErrUnsupported)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCancelTransactionAlreadyCancelled() {
	originalID := uuid.NewString()
	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.companyID, domain.RoleMember).
		Return(nil).Once()
	suite.mockTxnRepo.On("FindTransactionByID", suite.ctx, originalID).
		Return(&domain.Transaction{
			TransactionID: originalID,
			CompanyID:     suite.companyID,
			Type:          domain.Sale,
			Status:        domain.Cancelled,
		}, nil).Once()

	reversal, err := suite.service.CancelTransaction(suite.ctx, suite.companyID, originalID, suite.userID, "twice")

	suite.Nil(reversal)
	suite.ErrorIs(err, apperrors.ErrState)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransactionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCancelTransactionOtherCompany() {
	originalID := uuid.NewString()
	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.companyID, domain.RoleMember).
		Return(nil).Once()
	suite.mockTxnRepo.On("FindTransactionByID", suite.ctx, originalID).
		Return(&domain.Transaction{
			TransactionID: originalID,
			CompanyID:     uuid.NewString(),
			Type:          domain.Sale,
			Status:        domain.Confirmed,
		}, nil).Once()

	reversal, err := suite.service.CancelTransaction(suite.ctx, suite.companyID, originalID, suite.userID, "wrong company")

	suite.Nil(reversal)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByIDOtherCompany() {
	transactionID := uuid.NewString()
	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.companyID, domain.RoleReadOnly).
		Return(nil).Once()
	suite.mockTxnRepo.On("FindTransactionByID", suite.ctx, transactionID).
		Return(&domain.Transaction{TransactionID: transactionID, CompanyID: uuid.NewString()}, nil).Once()

	txn, err := suite.service.GetTransactionByID(suite.ctx, suite.companyID, transactionID, suite.userID)

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "FindLinesByTransactionID", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestListTransactionsSetsNextCursorOnFullPage() {
	filters := dto.TransactionFilters{Limit: 2}
	txns := []domain.Transaction{
		{TransactionID: uuid.NewString(), CompanyID: suite.companyID, AuditFields: domain.AuditFields{CreatedAt: time.Now().UTC()}},
		{TransactionID: uuid.NewString(), CompanyID: suite.companyID, AuditFields: domain.AuditFields{CreatedAt: time.Now().UTC().Add(-time.Minute)}},
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.companyID, domain.RoleReadOnly).
		Return(nil).Once()
	suite.mockTxnRepo.On("ListTransactions", suite.ctx, suite.companyID, filters).
		Return(txns, int64(7), nil).Once()

	resp, err := suite.service.ListTransactions(suite.ctx, suite.companyID, suite.userID, filters)

	suite.NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal(int64(7), resp.Total)
	suite.NotEmpty(resp.NextCursor)
}

func (suite *TransactionServiceTestSuite) TestListTransactionsNoCursorOnShortPage() {
	filters := dto.TransactionFilters{Limit: 20}
	txns := []domain.Transaction{
		{TransactionID: uuid.NewString(), CompanyID: suite.companyID, AuditFields: domain.AuditFields{CreatedAt: time.Now().UTC()}},
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.companyID, domain.RoleReadOnly).
		Return(nil).Once()
	suite.mockTxnRepo.On("ListTransactions", suite.ctx, suite.companyID, filters).
		Return(txns, int64(1), nil).Once()

	resp, err := suite.service.ListTransactions(suite.ctx, suite.companyID, suite.userID, filters)

	suite.NoError(err)
	suite.Require().NotNil(resp)
	suite.Empty(resp.NextCursor)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
