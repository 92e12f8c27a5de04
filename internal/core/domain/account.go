package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether t is one of the five account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Income, Expense:
		return true
	}
	return false
}

// Account is a node in a company's chart of accounts. Static reference data:
// balances are never stored here, only computed by replaying the ledger.
type Account struct {
	AccountID       string      `json:"accountID"`
	CompanyID       string      `json:"companyID"`
	Code            string      `json:"code"`
	Name            string      `json:"name"`
	Type            AccountType `json:"accountType"`
	ParentAccountID *string     `json:"parentAccountID,omitempty"`
	Description     string      `json:"description,omitempty"`
	IsActive        bool        `json:"isActive"`
	AuditFields
}
