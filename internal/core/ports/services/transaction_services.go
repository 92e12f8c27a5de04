package services

import (
	"context"

	"github.com/velorapos/velora_backend/internal/core/domain"
	"github.com/velorapos/velora_backend/internal/dto"
)

// TransactionReaderSvc defines read operations over the transaction log.
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a transaction with its lines.
	GetTransactionByID(ctx context.Context, companyID string, transactionID string, requestingUserID string) (*domain.Transaction, error)

	// ListTransactions retrieves a filtered, paginated slice of history plus
	// the total match count.
	ListTransactions(ctx context.Context, companyID string, userID string, filters dto.TransactionFilters) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc defines the write path of the ledger.
type TransactionWriterSvc interface {
	// CreateTransaction validates and atomically persists one business event
	// with its ordered lines, updating derived stock cost where applicable.
	CreateTransaction(ctx context.Context, companyID string, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)

	// CancelTransaction emits a sign-inverted reversal referencing the
	// original, then stamps the original CANCELLED. Only SALE and PURCHASE
	// are cancellable.
	CancelTransaction(ctx context.Context, companyID string, transactionID string, userID string, reason string) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
