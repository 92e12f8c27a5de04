package dto

import (
	"github.com/velorapos/velora_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportLine is one account with its presentation-signed balance.
type ReportLine struct {
	AccountID string             `json:"accountID"`
	Code      string             `json:"code"`
	Name      string             `json:"name"`
	Type      domain.AccountType `json:"accountType"`
	Balance   decimal.Decimal    `json:"balance"`
}

// BalanceSheetResponse groups presentation-signed balances by statement side.
type BalanceSheetResponse struct {
	Assets           []ReportLine    `json:"assets"`
	Liabilities      []ReportLine    `json:"liabilities"`
	Equity           []ReportLine    `json:"equity"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
}

// IncomeStatementResponse is the period result built from income and
// expense balances.
type IncomeStatementResponse struct {
	Income        []ReportLine    `json:"income"`
	Expenses      []ReportLine    `json:"expenses"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetResult     decimal.Decimal `json:"netResult"`
}
