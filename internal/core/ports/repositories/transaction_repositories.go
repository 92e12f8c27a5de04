package repositories

import (
	"context"
	"time"

	"github.com/velorapos/velora_backend/internal/core/domain"
	"github.com/velorapos/velora_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations over the transaction log.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction header by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindLinesByTransactionID retrieves a transaction's lines in lineNumber order.
	FindLinesByTransactionID(ctx context.Context, transactionID string) ([]domain.TransactionLine, error)

	// ListTransactions retrieves a filtered page of transactions plus the total
	// match count, newest first.
	ListTransactions(ctx context.Context, companyID string, filters dto.TransactionFilters) ([]domain.Transaction, int64, error)

	// ListConfirmedByCompany retrieves every CONFIRMED transaction of a company
	// with lines, in creation order. Feed for the ledger builder.
	ListConfirmedByCompany(ctx context.Context, companyID string) ([]domain.Transaction, error)

	// SumCashSessionCash computes the net cash impact of a session's CONFIRMED
	// transactions: cash sales minus cash sale returns, plus session deposits,
	// minus session withdrawals. Feeds the expected amount at close.
	SumCashSessionCash(ctx context.Context, cashSessionID string) (decimal.Decimal, error)
}

// StockReader defines the replay queries behind stock and PMP derivation.
type StockReader interface {
	// SumVariantStock computes inbound minus outbound base quantity over all
	// CONFIRMED transactions' lines for a variant.
	SumVariantStock(ctx context.Context, variantID string) (decimal.Decimal, error)

	// ListConfirmedLinesByVariant retrieves a variant's CONFIRMED lines with
	// their transaction types, in creation order. Used for reconciliation.
	ListConfirmedLinesByVariant(ctx context.Context, variantID string) ([]domain.TransactionLine, []domain.TransactionType, error)
}

// TransactionWriter defines the single write path of the ledger.
type TransactionWriter interface {
	// SaveTransaction persists a transaction and its lines as one atomic unit:
	// document number assignment, header insert, line inserts, and the
	// weighted-average cost update for qualifying PURCHASE lines all commit
	// together or not at all. The returned transaction carries the assigned
	// document number and line IDs.
	SaveTransaction(ctx context.Context, tx domain.Transaction, lines []domain.TransactionLine) (*domain.Transaction, error)

	// UpdateTransactionStatus performs the single sanctioned post-hoc mutation:
	// status flip plus metadata annotation. Called only after a reversal has
	// durably committed.
	UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, metadata *domain.Metadata, updatedByUserID string, updatedAt time.Time) error
}

// TransactionRepositoryFacade combines all transaction-log repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	StockReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends the facade with transaction management.
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
