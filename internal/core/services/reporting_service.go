package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/velorapos/velora_backend/internal/core/domain"
	portsrepo "github.com/velorapos/velora_backend/internal/core/ports/repositories"
	portssvc "github.com/velorapos/velora_backend/internal/core/ports/services"
	"github.com/velorapos/velora_backend/internal/dto"
	"github.com/velorapos/velora_backend/internal/utils/accounting"
)

// reportingService builds financial statements on top of the ledger replay.
// This is where raw balances become presentation-signed figures, and nowhere
// else.
type reportingService struct {
	BaseService
	ledgerSvc   portssvc.LedgerSvcFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewReportingService creates the statement builder.
func NewReportingService(
	ledgerSvc portssvc.LedgerSvcFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	authorizer portssvc.CompanyAuthorizerSvc,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		BaseService: BaseService{CompanyAuthorizer: authorizer},
		ledgerSvc:   ledgerSvc,
		accountRepo: accountRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// reportLines converts the accounts of the wanted types into presentation-
// signed report lines, skipping zero balances.
func (s *reportingService) reportLines(ctx context.Context, companyID, requestingUserID string, wanted ...domain.AccountType) (map[domain.AccountType][]dto.ReportLine, map[domain.AccountType]decimal.Decimal, error) {
	ledger, err := s.ledgerSvc.BuildLedger(ctx, companyID, requestingUserID)
	if err != nil {
		return nil, nil, err
	}
	accounts, err := s.accountRepo.ListAccountsByCompany(ctx, companyID)
	if err != nil {
		return nil, nil, err
	}

	wantedSet := make(map[domain.AccountType]bool, len(wanted))
	for _, t := range wanted {
		wantedSet[t] = true
	}

	lines := make(map[domain.AccountType][]dto.ReportLine)
	totals := make(map[domain.AccountType]decimal.Decimal)
	for _, account := range accounts {
		if !wantedSet[account.Type] {
			continue
		}
		raw := ledger.BalanceByAccount[account.AccountID]
		if raw.IsZero() {
			continue
		}
		presented, err := accounting.NormalizeBalanceForPresentation(account.Type, raw)
		if err != nil {
			return nil, nil, err
		}
		lines[account.Type] = append(lines[account.Type], dto.ReportLine{
			AccountID: account.AccountID,
			Code:      account.Code,
			Name:      account.Name,
			Type:      account.Type,
			Balance:   presented,
		})
		totals[account.Type] = totals[account.Type].Add(presented)
	}
	return lines, totals, nil
}

// BalanceSheet groups presented asset, liability and equity balances.
func (s *reportingService) BalanceSheet(ctx context.Context, companyID string, requestingUserID string) (*dto.BalanceSheetResponse, error) {
	lines, totals, err := s.reportLines(ctx, companyID, requestingUserID,
		domain.Asset, domain.Liability, domain.Equity)
	if err != nil {
		return nil, err
	}
	return &dto.BalanceSheetResponse{
		Assets:           orEmpty(lines[domain.Asset]),
		Liabilities:      orEmpty(lines[domain.Liability]),
		Equity:           orEmpty(lines[domain.Equity]),
		TotalAssets:      totals[domain.Asset],
		TotalLiabilities: totals[domain.Liability],
		TotalEquity:      totals[domain.Equity],
	}, nil
}

// IncomeStatement nets presented income against expenses.
func (s *reportingService) IncomeStatement(ctx context.Context, companyID string, requestingUserID string) (*dto.IncomeStatementResponse, error) {
	lines, totals, err := s.reportLines(ctx, companyID, requestingUserID,
		domain.Income, domain.Expense)
	if err != nil {
		return nil, err
	}
	return &dto.IncomeStatementResponse{
		Income:        orEmpty(lines[domain.Income]),
		Expenses:      orEmpty(lines[domain.Expense]),
		TotalIncome:   totals[domain.Income],
		TotalExpenses: totals[domain.Expense],
		NetResult:     totals[domain.Income].Sub(totals[domain.Expense]),
	}, nil
}

func orEmpty(lines []dto.ReportLine) []dto.ReportLine {
	if lines == nil {
		return []dto.ReportLine{}
	}
	return lines
}
