package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashSessionStatus is the lifecycle state of a register session.
type CashSessionStatus string

const (
	SessionOpen   CashSessionStatus = "OPEN"
	SessionClosed CashSessionStatus = "CLOSED"
)

// CashSession bounds a register's operating window. A sale may reference an
// open session only (ClosedAt is null while open).
type CashSession struct {
	SessionID      string            `json:"sessionID"`
	CompanyID      string            `json:"companyID"`
	PointOfSaleID  string            `json:"pointOfSaleID"`
	UserID         string            `json:"userID"`
	Status         CashSessionStatus `json:"status"`
	OpeningAmount  decimal.Decimal   `json:"openingAmount"`
	ExpectedAmount *decimal.Decimal  `json:"expectedAmount,omitempty"`
	DeclaredAmount *decimal.Decimal  `json:"declaredAmount,omitempty"`
	Deviation      *decimal.Decimal  `json:"deviation,omitempty"`
	OpenedAt       time.Time         `json:"openedAt"`
	ClosedAt       *time.Time        `json:"closedAt,omitempty"`
	AuditFields
}

// IsOpen reports whether the session can still accept sales.
func (s CashSession) IsOpen() bool {
	return s.ClosedAt == nil && s.Status == SessionOpen
}
