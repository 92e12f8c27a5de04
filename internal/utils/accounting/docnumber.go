package accounting

import (
	"fmt"

	"github.com/velorapos/velora_backend/internal/core/domain"
)

const (
	operationalPadding = 8
	treasuryPadding    = 6
)

// FormatDocumentNumber renders the monotonic sequence value for a transaction
// type as its document number: prefix plus zero-padded sequence. Operational
// types pad to 8 digits, treasury types to 6.
func FormatDocumentNumber(txType domain.TransactionType, sequence int64) (string, error) {
	prefix, ok := txType.DocumentPrefix()
	if !ok {
		return "", fmt.Errorf("no document prefix defined for transaction type %q", txType)
	}
	padding := operationalPadding
	if txType.IsTreasury() {
		padding = treasuryPadding
	}
	return fmt.Sprintf("%s-%0*d", prefix, padding, sequence), nil
}
