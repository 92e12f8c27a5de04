package accounting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velorapos/velora_backend/internal/core/domain"
	"github.com/velorapos/velora_backend/internal/utils/accounting"
)

func TestFormatDocumentNumber(t *testing.T) {
	cases := []struct {
		txType   domain.TransactionType
		sequence int64
		want     string
	}{
		{domain.Sale, 1, "SAL-00000001"},
		{domain.Sale, 42, "SAL-00000042"},
		{domain.Purchase, 7, "PUR-00000007"},
		{domain.SaleReturn, 3, "SRT-00000003"},
		{domain.AdjustmentOut, 120, "ADO-00000120"},
		// treasury types pad to 6
		{domain.PaymentIn, 1, "PIN-000001"},
		{domain.OperatingExpense, 999999, "EXP-999999"},
		{domain.CashSessionWithdrawal, 12, "CSW-000012"},
	}

	for _, tc := range cases {
		got, err := accounting.FormatDocumentNumber(tc.txType, tc.sequence)
		require.NoError(t, err, "type %s", tc.txType)
		assert.Equal(t, tc.want, got)
	}
}

func TestFormatDocumentNumberUnknownType(t *testing.T) {
	_, err := accounting.FormatDocumentNumber(domain.TransactionType("MYSTERY"), 1)
	assert.Error(t, err)
}

func TestDocumentSequencesIndependentPerType(t *testing.T) {
	// the same sequence value renders differently per type, so streams
	// never collide
	sale, err := accounting.FormatDocumentNumber(domain.Sale, 5)
	require.NoError(t, err)
	purchase, err := accounting.FormatDocumentNumber(domain.Purchase, 5)
	require.NoError(t, err)
	assert.NotEqual(t, sale, purchase)
}
