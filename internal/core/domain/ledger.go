package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Posting is a single signed amount attributed to one account, derived from a
// confirmed transaction for ledger display.
type Posting struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	Date        time.Time       `json:"date"`
	Reference   string          `json:"reference"` // document number
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// LedgerAccount is an account node with its raw balance and the rolled-up
// balance including children. Children are sorted by code.
type LedgerAccount struct {
	Account
	RawBalance      decimal.Decimal  `json:"rawBalance"`
	RolledUpBalance decimal.Decimal  `json:"rolledUpBalance"`
	Children        []*LedgerAccount `json:"children,omitempty"`
}

// Ledger is the full replay result for a company: account tree, ordered
// posting feed, and a raw balance per account (presentation sign handling is
// applied separately and exactly once).
type Ledger struct {
	Accounts         []*LedgerAccount           `json:"accounts"`
	Postings         []Posting                  `json:"postings"`
	BalanceByAccount map[string]decimal.Decimal `json:"balanceByAccount"`
}
