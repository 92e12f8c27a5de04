package services

import (
	"context"

	"github.com/velorapos/velora_backend/internal/core/domain"
	"github.com/velorapos/velora_backend/internal/dto"
)

// LedgerSvcFacade is the read-side replay of the transaction log into
// per-account balances and an ordered posting feed.
type LedgerSvcFacade interface {
	BuildLedger(ctx context.Context, companyID string, requestingUserID string) (*domain.Ledger, error)
}

// ReportingSvcFacade builds financial statements on top of the ledger replay.
type ReportingSvcFacade interface {
	BalanceSheet(ctx context.Context, companyID string, requestingUserID string) (*dto.BalanceSheetResponse, error)
	IncomeStatement(ctx context.Context, companyID string, requestingUserID string) (*dto.IncomeStatementResponse, error)
}
