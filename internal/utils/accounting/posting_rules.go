package accounting

import (
	"fmt"

	"github.com/velorapos/velora_backend/internal/core/domain"
)

// Side says which posting column an effect lands in. Raw balance accumulation
// is debit-positive; presentation sign handling happens later, once.
type Side int

const (
	DebitSide Side = iota
	CreditSide
)

// Well-known account codes of the seeded chart of accounts. The ledger
// builder resolves them to company-specific account IDs at replay time.
const (
	CodeCash              = "1100" // Caja General
	CodeBanks             = "1200"
	CodeInventory         = "1300"
	CodeReceivables       = "1400"
	CodePayables          = "2100"
	CodeCapital           = "3100"
	CodeSalesRevenue      = "4100"
	CodeCostOfGoods       = "5100"
	CodeInventoryAdjust   = "5200"
	CodeOperatingExpenses = "5300"
)

// PostingEffect attributes the transaction's total to one account.
type PostingEffect struct {
	AccountCode string
	Side        Side
}

// PostingRule is the fixed list of effects a transaction type produces.
// An empty (non-nil) rule means the type is deliberately finance-neutral.
type PostingRule struct {
	Effects []PostingEffect
}

// postingRules is the explicit transaction-type-to-account lookup table.
// Unmapped types fail loudly through ResolvePostingRule; add new types here.
var postingRules = map[domain.TransactionType]PostingRule{
	domain.Sale: {Effects: []PostingEffect{
		{CodeCash, DebitSide}, {CodeSalesRevenue, CreditSide},
	}},
	domain.SaleReturn: {Effects: []PostingEffect{
		{CodeSalesRevenue, DebitSide}, {CodeCash, CreditSide},
	}},
	domain.Purchase: {Effects: []PostingEffect{
		{CodeInventory, DebitSide}, {CodePayables, CreditSide},
	}},
	domain.PurchaseReturn: {Effects: []PostingEffect{
		{CodePayables, DebitSide}, {CodeInventory, CreditSide},
	}},
	// Transfers move stock between storages; financially neutral.
	domain.TransferIn:  {},
	domain.TransferOut: {},
	domain.AdjustmentIn: {Effects: []PostingEffect{
		{CodeInventory, DebitSide}, {CodeInventoryAdjust, CreditSide},
	}},
	domain.AdjustmentOut: {Effects: []PostingEffect{
		{CodeInventoryAdjust, DebitSide}, {CodeInventory, CreditSide},
	}},
	domain.PaymentIn: {Effects: []PostingEffect{
		{CodeCash, DebitSide}, {CodeReceivables, CreditSide},
	}},
	domain.PaymentOut: {Effects: []PostingEffect{
		{CodePayables, DebitSide}, {CodeCash, CreditSide},
	}},
	domain.OperatingExpense: {Effects: []PostingEffect{
		{CodeOperatingExpenses, DebitSide}, {CodeCash, CreditSide},
	}},
	domain.CashDeposit: {Effects: []PostingEffect{
		{CodeCash, DebitSide}, {CodeBanks, CreditSide},
	}},
	domain.CashSessionDeposit: {Effects: []PostingEffect{
		{CodeCash, DebitSide}, {CodeBanks, CreditSide},
	}},
	domain.CashSessionWithdrawal: {Effects: []PostingEffect{
		{CodeBanks, DebitSide}, {CodeCash, CreditSide},
	}},
}

// ResolvePostingRule returns the posting effects for a transaction, taking
// metadata into account: a capital-contribution deposit credits Capital
// instead of Banks/Receivables. Unknown types return an error so that new
// transaction types fail loudly until mapped.
func ResolvePostingRule(txType domain.TransactionType, meta *domain.Metadata) (PostingRule, error) {
	rule, ok := postingRules[txType]
	if !ok {
		return PostingRule{}, fmt.Errorf("no posting rule mapped for transaction type %q", txType)
	}
	if meta != nil && meta.Kind == domain.MovementCapitalContribution {
		effects := make([]PostingEffect, len(rule.Effects))
		copy(effects, rule.Effects)
		for i := range effects {
			if effects[i].Side == CreditSide {
				effects[i].AccountCode = CodeCapital
			}
		}
		return PostingRule{Effects: effects}, nil
	}
	return rule, nil
}
