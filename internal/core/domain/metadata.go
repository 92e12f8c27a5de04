package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind tags the typed metadata payload carried by a transaction.
// The payloads form a closed set validated at write time; metadata is
// provenance only and never the source of truth for balances.
type MovementKind string

const (
	MovementBankTransfer        MovementKind = "BANK_TRANSFER"
	MovementCashMovement        MovementKind = "CASH_MOVEMENT"
	MovementCapitalContribution MovementKind = "CAPITAL_CONTRIBUTION"
	MovementWithdrawal          MovementKind = "WITHDRAWAL"
)

// BankMovementData records provenance for bank deposits and transfers.
type BankMovementData struct {
	BankAccountKey string          `json:"bankAccountKey"`
	BalanceBefore  decimal.Decimal `json:"balanceBefore"`
	BalanceAfter   decimal.Decimal `json:"balanceAfter"`
	Reference      string          `json:"reference,omitempty"`
}

// CashMovementData records provenance for cash session deposits/withdrawals.
type CashMovementData struct {
	CashSessionID string `json:"cashSessionID"`
	Reason        string `json:"reason,omitempty"`
}

// CapitalContributionData records provenance for shareholder capital events.
type CapitalContributionData struct {
	ShareholderID string          `json:"shareholderID"`
	Amount        decimal.Decimal `json:"amount"`
	Notes         string          `json:"notes,omitempty"`
}

// CancellationRecord is appended to a transaction's metadata when its
// reversal commits. It is annotation only; the reversal transaction is the
// financial record.
type CancellationRecord struct {
	ReversalTransactionID string    `json:"reversalTransactionID"`
	ReversalDocumentNo    string    `json:"reversalDocumentNo"`
	Reason                string    `json:"reason"`
	CancelledBy           string    `json:"cancelledBy"`
	CancelledAt           time.Time `json:"cancelledAt"`
}

// Metadata is the tagged union of per-movement-kind payloads. At most one
// payload matching Kind is set; Cancellation may be appended later regardless
// of kind.
type Metadata struct {
	Kind                MovementKind             `json:"kind,omitempty"`
	BankMovement        *BankMovementData        `json:"bankMovement,omitempty"`
	CashMovement        *CashMovementData        `json:"cashMovement,omitempty"`
	CapitalContribution *CapitalContributionData `json:"capitalContribution,omitempty"`
	Cancellation        *CancellationRecord      `json:"cancellation,omitempty"`
}

// Validate checks that the payload present matches the declared kind.
func (m *Metadata) Validate() error {
	if m == nil || m.Kind == "" {
		return nil
	}
	switch m.Kind {
	case MovementBankTransfer:
		if m.BankMovement == nil {
			return fmt.Errorf("metadata kind %s requires a bankMovement payload", m.Kind)
		}
	case MovementCashMovement, MovementWithdrawal:
		if m.CashMovement == nil {
			return fmt.Errorf("metadata kind %s requires a cashMovement payload", m.Kind)
		}
	case MovementCapitalContribution:
		if m.CapitalContribution == nil {
			return fmt.Errorf("metadata kind %s requires a capitalContribution payload", m.Kind)
		}
	default:
		return fmt.Errorf("unknown metadata kind %q", m.Kind)
	}
	return nil
}
