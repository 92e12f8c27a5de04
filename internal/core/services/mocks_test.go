package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/velorapos/velora_backend/internal/core/domain"
	portsrepo "github.com/velorapos/velora_backend/internal/core/ports/repositories"
	portssvc "github.com/velorapos/velora_backend/internal/core/ports/services"
	"github.com/velorapos/velora_backend/internal/dto"
)

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryWithTx = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindLinesByTransactionID(ctx context.Context, transactionID string) ([]domain.TransactionLine, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionLine), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, companyID string, filters dto.TransactionFilters) ([]domain.Transaction, int64, error) {
	args := m.Called(ctx, companyID, filters)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockTransactionRepository) ListConfirmedByCompany(ctx context.Context, companyID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SumCashSessionCash(ctx context.Context, cashSessionID string) (decimal.Decimal, error) {
	args := m.Called(ctx, cashSessionID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockTransactionRepository) SumVariantStock(ctx context.Context, variantID string) (decimal.Decimal, error) {
	args := m.Called(ctx, variantID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockTransactionRepository) ListConfirmedLinesByVariant(ctx context.Context, variantID string) ([]domain.TransactionLine, []domain.TransactionType, error) {
	args := m.Called(ctx, variantID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.TransactionLine), args.Get(1).([]domain.TransactionType), args.Error(2)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, tx domain.Transaction, lines []domain.TransactionLine) (*domain.Transaction, error) {
	args := m.Called(ctx, tx, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, metadata *domain.Metadata, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, transactionID, status, metadata, updatedByUserID, updatedAt)
	return args.Error(0)
}

func (m *MockTransactionRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTransactionRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock VariantRepository ---

type MockVariantRepository struct {
	mock.Mock
}

var _ portsrepo.VariantRepositoryFacade = (*MockVariantRepository)(nil)

func (m *MockVariantRepository) FindVariantByID(ctx context.Context, variantID string) (*domain.ProductVariant, error) {
	args := m.Called(ctx, variantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductVariant), args.Error(1)
}

func (m *MockVariantRepository) FindVariantsByIDs(ctx context.Context, variantIDs []string) (map[string]domain.ProductVariant, error) {
	args := m.Called(ctx, variantIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.ProductVariant), args.Error(1)
}

func (m *MockVariantRepository) ListVariantsByCompany(ctx context.Context, companyID string) ([]domain.ProductVariant, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductVariant), args.Error(1)
}

func (m *MockVariantRepository) SaveVariant(ctx context.Context, variant domain.ProductVariant) error {
	args := m.Called(ctx, variant)
	return args.Error(0)
}

func (m *MockVariantRepository) UpdateVariantPMP(ctx context.Context, variantID string, pmp decimal.Decimal, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, variantID, pmp, updatedByUserID, updatedAt)
	return args.Error(0)
}

// --- Mock CashSessionRepository ---

type MockCashSessionRepository struct {
	mock.Mock
}

var _ portsrepo.CashSessionRepositoryFacade = (*MockCashSessionRepository)(nil)

func (m *MockCashSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.CashSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashSession), args.Error(1)
}

func (m *MockCashSessionRepository) FindOpenSessionByPointOfSale(ctx context.Context, companyID, pointOfSaleID string) (*domain.CashSession, error) {
	args := m.Called(ctx, companyID, pointOfSaleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashSession), args.Error(1)
}

func (m *MockCashSessionRepository) SaveSession(ctx context.Context, session domain.CashSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockCashSessionRepository) CloseSession(ctx context.Context, session domain.CashSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedByUserID string, deletedAt time.Time) error {
	args := m.Called(ctx, userID, deletedByUserID, deletedAt)
	return args.Error(0)
}

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByCompany(ctx context.Context, companyID string) ([]domain.Account, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByCodes(ctx context.Context, companyID string, codes []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, companyID, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// --- Mock CompanyAuthorizer ---

type MockCompanyAuthorizer struct {
	mock.Mock
}

var _ portssvc.CompanyAuthorizerSvc = (*MockCompanyAuthorizer)(nil)

func (m *MockCompanyAuthorizer) AuthorizeUserAction(ctx context.Context, userID, companyID string, requiredRole domain.UserCompanyRole) error {
	args := m.Called(ctx, userID, companyID, requiredRole)
	return args.Error(0)
}
