package accounting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velorapos/velora_backend/internal/core/domain"
	"github.com/velorapos/velora_backend/internal/utils/accounting"
)

func TestResolvePostingRuleSale(t *testing.T) {
	rule, err := accounting.ResolvePostingRule(domain.Sale, nil)
	require.NoError(t, err)
	require.Len(t, rule.Effects, 2)
	assert.Equal(t, accounting.CodeCash, rule.Effects[0].AccountCode)
	assert.Equal(t, accounting.DebitSide, rule.Effects[0].Side)
	assert.Equal(t, accounting.CodeSalesRevenue, rule.Effects[1].AccountCode)
	assert.Equal(t, accounting.CreditSide, rule.Effects[1].Side)
}

func TestResolvePostingRuleReversalMirrorsOriginal(t *testing.T) {
	sale, err := accounting.ResolvePostingRule(domain.Sale, nil)
	require.NoError(t, err)
	saleReturn, err := accounting.ResolvePostingRule(domain.SaleReturn, nil)
	require.NoError(t, err)

	// the return debits what the sale credits and vice versa
	require.Len(t, saleReturn.Effects, 2)
	assert.Equal(t, sale.Effects[1].AccountCode, saleReturn.Effects[0].AccountCode)
	assert.Equal(t, sale.Effects[0].AccountCode, saleReturn.Effects[1].AccountCode)
}

func TestResolvePostingRuleTransfersAreNeutral(t *testing.T) {
	for _, txType := range []domain.TransactionType{domain.TransferIn, domain.TransferOut} {
		rule, err := accounting.ResolvePostingRule(txType, nil)
		require.NoError(t, err)
		assert.Empty(t, rule.Effects, "%s must not touch any account", txType)
	}
}

func TestResolvePostingRuleCapitalContribution(t *testing.T) {
	meta := &domain.Metadata{
		Kind:                domain.MovementCapitalContribution,
		CapitalContribution: &domain.CapitalContributionData{ShareholderID: "sh-1"},
	}

	rule, err := accounting.ResolvePostingRule(domain.CashDeposit, meta)
	require.NoError(t, err)
	require.Len(t, rule.Effects, 2)
	assert.Equal(t, accounting.CodeCash, rule.Effects[0].AccountCode)
	assert.Equal(t, accounting.CodeCapital, rule.Effects[1].AccountCode, "credit side redirects to capital")

	// the shared table must not be mutated by the override
	plain, err := accounting.ResolvePostingRule(domain.CashDeposit, nil)
	require.NoError(t, err)
	assert.Equal(t, accounting.CodeBanks, plain.Effects[1].AccountCode)
}

func TestResolvePostingRuleUnknownType(t *testing.T) {
	_, err := accounting.ResolvePostingRule(domain.TransactionType("MYSTERY"), nil)
	assert.Error(t, err)
}
