package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/velorapos/velora_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	transactionRepo := newPgxTransactionRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool)
	variantRepo := newPgxVariantRepository(dbPool)
	cashSessionRepo := newPgxCashSessionRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	companyRepo := newPgxCompanyRepository(dbPool)
	registerTokenRepo := newPgxRegisterTokenRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TransactionRepo:   transactionRepo,
		AccountRepo:       accountRepo,
		VariantRepo:       variantRepo,
		CashSessionRepo:   cashSessionRepo,
		UserRepo:          userRepo,
		CompanyRepo:       companyRepo,
		RegisterTokenRepo: registerTokenRepo,
	}
}
