package services_test

import (
	"context"
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
)

type CashSessionServiceTestSuite struct {
	suite.Suite
	mockSessionRepo *MockCashSessionRepository
	mockTxnRepo     *MockTransactionRepository
	mockAuthorizer  *MockCompanyAuthorizer
	service         portssvc.CashSessionSvcFacade
	ctx             context.Context

	companyID     string
	userID        string
	pointOfSaleID string
}

func (suite *CashSessionServiceTestSuite) SetupTest() {
	suite.mockSessionRepo = new(MockCashSessionRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAuthorizer = new(MockCompanyAuthorizer)
	suite.service = services.NewCashSessionService(suite.mockSessionRepo, suite.mockTxnRepo, suite.mockAuthorizer)
	suite.ctx = context.Background()

	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.pointOfSaleID = uuid.NewString()
}

func (suite *CashSessionServiceTestSuite) TestOpenSessionSuccess() {
	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.companyID, domain.RoleMember).
		Return(nil).Once()
	suite.mockSessionRepo.On("FindOpenSessionByPointOfSale", suite.ctx, suite.companyID, suite.pointOfSaleID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSessionRepo.On("SaveSession", suite.ctx, mock.AnythingOfType("domain.CashSession")).
		Return(nil).Once()

	req := dto.OpenCashSessionRequest{
		PointOfSaleID: suite.pointOfSaleID,
		OpeningAmount: decimal.NewFromInt(100),
	}
	session, err := suite.service.OpenSession(suite.ctx, suite.companyID, req, suite.userID)

	suite.NoError(err)
	suite.Require().NotNil(session)
	suite.Equal(domain.SessionOpen, session.Status)
	suite.Equal(suite.pointOfSaleID, session.PointOfSaleID)
	suite.True(session.OpeningAmount.Equal(decimal.NewFromInt(100)))
	suite.Nil(session.ClosedAt)
	suite.mockSessionRepo.AssertExpectations(suite.T())
}

func (suite *CashSessionServiceTestSuite) TestOpenSessionRegisterAlreadyOpen() {
	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.companyID, domain.RoleMember).
		Return(nil).Once()
	suite.mockSessionRepo.On("FindOpenSessionByPointOfSale", suite.ctx, suite.companyID, suite.pointOfSaleID).
		Return(&domain.CashSession{
			SessionID:     uuid.NewString(),
			CompanyID:     suite.companyID,
			PointOfSaleID: suite.pointOfSaleID,
			Status:        domain.SessionOpen,
		}, nil).Once()

	req := dto.OpenCashSessionRequest{PointOfSaleID: suite.pointOfSaleID}
	session, err := suite.service.OpenSession(suite.ctx, suite.companyID, req, suite.userID)

	suite.Nil(session)
	suite.ErrorIs(err, apperrors.ErrState)
	suite.mockSessionRepo.AssertNotCalled(suite.T(), "SaveSession", mock.Anything, mock.Anything)
}

func (suite *CashSessionServiceTestSuite) TestOpenSessionNegativeOpeningAmount() {
	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.companyID, domain.RoleMember).
		Return(nil).Once()

	req := dto.OpenCashSessionRequest{
		PointOfSaleID: suite.pointOfSaleID,
		OpeningAmount: decimal.NewFromInt(-1),
	}
	session, err := suite.service.OpenSession(suite.ctx, suite.companyID, req, suite.userID)

	suite.Nil(session)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CashSessionServiceTestSuite) TestCloseSessionComputesDeviation() {
	sessionID := uuid.NewString()
	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.companyID, domain.RoleMember).
		Return(nil).Once()
	suite.mockSessionRepo.On("FindSessionByID", suite.ctx, sessionID).
		Return(&domain.CashSession{
			SessionID:     sessionID,
			CompanyID:     suite.companyID,
			PointOfSaleID: suite.pointOfSaleID,
			Status:        domain.SessionOpen,
			OpeningAmount: decimal.NewFromInt(100),
		}, nil).Once()
	suite.mockTxnRepo.On("SumCashSessionCash", suite.ctx, sessionID).
		Return(decimal.RequireFromString("250.50"), nil).Once()

	var closed domain.CashSession
	suite.mockSessionRepo.On("CloseSession", suite.ctx, mock.AnythingOfType("domain.CashSession")).
		Run(func(args mock.Arguments) {
			closed = args.Get(1).(domain.CashSession)
		}).
		Return(nil).Once()

	req := dto.CloseCashSessionRequest{DeclaredAmount: decimal.NewFromInt(350)}
	session, err := suite.service.CloseSession(suite.ctx, suite.companyID, sessionID, req, suite.userID)

	suite.NoError(err)
	suite.Require().NotNil(session)
	suite.Equal(domain.SessionClosed, closed.Status)
	suite.Require().NotNil(closed.ExpectedAmount)
	// Opened with 100, moved 250.50 in cash, so 350.50 should be in the drawer.
	suite.True(closed.ExpectedAmount.Equal(decimal.RequireFromString("350.50")))
	suite.Require().NotNil(closed.Deviation)
	suite.True(closed.Deviation.Equal(decimal.RequireFromString("-0.50")))
	suite.NotNil(closed.ClosedAt)
	suite.mockSessionRepo.AssertExpectations(suite.T())
}

func (suite *CashSessionServiceTestSuite) TestCloseSessionAlreadyClosed() {
	sessionID := uuid.NewString()
	closedAt := time.Now().UTC().Add(-time.Hour)
	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.companyID, domain.RoleMember).
		Return(nil).Once()
	suite.mockSessionRepo.On("FindSessionByID", suite.ctx, sessionID).
		Return(&domain.CashSession{
			SessionID: sessionID,
			CompanyID: suite.companyID,
			Status:    domain.SessionClosed,
			ClosedAt:  &closedAt,
		}, nil).Once()

	req := dto.CloseCashSessionRequest{DeclaredAmount: decimal.NewFromInt(10)}
	session, err := suite.service.CloseSession(suite.ctx, suite.companyID, sessionID, req, suite.userID)

	suite.Nil(session)
	suite.ErrorIs(err, apperrors.ErrState)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SumCashSessionCash", mock.Anything, mock.Anything)
}

func (suite *CashSessionServiceTestSuite) TestCloseSessionOtherCompany() {
	sessionID := uuid.NewString()
	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.companyID, domain.RoleMember).
		Return(nil).Once()
	suite.mockSessionRepo.On("FindSessionByID", suite.ctx, sessionID).
		Return(&domain.CashSession{
			SessionID: sessionID,
			CompanyID: uuid.NewString(),
			Status:    domain.SessionOpen,
		}, nil).Once()

	req := dto.CloseCashSessionRequest{DeclaredAmount: decimal.NewFromInt(10)}
	session, err := suite.service.CloseSession(suite.ctx, suite.companyID, sessionID, req, suite.userID)

	suite.Nil(session)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestCashSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CashSessionServiceTestSuite))
}
