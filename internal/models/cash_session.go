package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashSession is the database shape of a point of sale cash session.
type CashSession struct {
	SessionID      string           `db:"session_id"`
	CompanyID      string           `db:"company_id"`
	PointOfSaleID  string           `db:"point_of_sale_id"`
	UserID         string           `db:"user_id"`
	Status         string           `db:"status"`
	OpeningAmount  decimal.Decimal  `db:"opening_amount"`
	ExpectedAmount *decimal.Decimal `db:"expected_amount"`
	DeclaredAmount *decimal.Decimal `db:"declared_amount"`
	Deviation      *decimal.Decimal `db:"deviation"`
	OpenedAt       time.Time        `db:"opened_at"`
	ClosedAt       *time.Time       `db:"closed_at"`
	AuditFields
}
