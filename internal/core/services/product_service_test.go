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
	"github.com/velorapos/velora_backend/internal/dto"
)

type ProductServiceTestSuite struct {
	suite.Suite
	mockVariantRepo *MockVariantRepository
	mockAuthorizer  *MockCompanyAuthorizer
	service         portssvc.ProductSvcFacade
	ctx             context.Context

	companyID string
	userID    string
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.mockVariantRepo = new(MockVariantRepository)
	suite.mockAuthorizer = new(MockCompanyAuthorizer)
	suite.service = services.NewProductService(suite.mockVariantRepo, suite.mockAuthorizer)
	suite.ctx = context.Background()

	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *ProductServiceTestSuite) variantRequest() dto.CreateVariantRequest {
	return dto.CreateVariantRequest{
		ProductID:  uuid.NewString(),
		Name:       "Flour 25kg sack",
		SKU:        "FLR-25",
		UnitSymbol: "kg",
	}
}

func (suite *ProductServiceTestSuite) TestCreateVariantDefaultsConversionFactor() {
	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.companyID, domain.RoleMember).
		Return(nil).Once()

	var saved domain.ProductVariant
	suite.mockVariantRepo.On("SaveVariant", suite.ctx, mock.AnythingOfType("domain.ProductVariant")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.ProductVariant)
		}).
		Return(nil).Once()

	variant, err := suite.service.CreateVariant(suite.ctx, suite.companyID, suite.variantRequest(), suite.userID)

	suite.NoError(err)
	suite.Require().NotNil(variant)
	suite.True(saved.ConversionFactor.Equal(decimal.NewFromInt(1)))
	suite.True(saved.PMP.IsZero())
	suite.True(saved.IsActive)
	suite.mockVariantRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestCreateVariantRejectsNegativeConversionFactor() {
	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.companyID, domain.RoleMember).
		Return(nil).Once()

	req := suite.variantRequest()
	req.ConversionFactor = decimal.NewFromInt(-25)

	_, err := suite.service.CreateVariant(suite.ctx, suite.companyID, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockVariantRepo.AssertNotCalled(suite.T(), "SaveVariant", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestGetVariantByIDOtherCompany() {
	variantID := uuid.NewString()
	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.companyID, domain.RoleReadOnly).
		Return(nil).Once()
	suite.mockVariantRepo.On("FindVariantByID", suite.ctx, variantID).
		Return(&domain.ProductVariant{VariantID: variantID, CompanyID: uuid.NewString()}, nil).Once()

	_, err := suite.service.GetVariantByID(suite.ctx, suite.companyID, variantID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestProductServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
