package dto

import (
	"github.com/shopspring/decimal"
)

// OpenCashSessionRequest opens a register operating window.
type OpenCashSessionRequest struct {
	PointOfSaleID string          `json:"pointOfSaleID" binding:"required"`
	OpeningAmount decimal.Decimal `json:"openingAmount"`
}

// CloseCashSessionRequest closes a register with the counted amount.
type CloseCashSessionRequest struct {
	DeclaredAmount decimal.Decimal `json:"declaredAmount" binding:"required"`
}
