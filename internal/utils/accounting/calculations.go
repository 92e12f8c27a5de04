package accounting

import (
	"fmt"

	"github.com/velorapos/velora_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineTotal computes the invariant total of a single line:
// quantity*unitPrice - discount + tax, rounded to 2 decimals.
func LineTotal(quantity, unitPrice, discount, tax decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice).Sub(discount).Add(tax).Round(2)
}

// AggregateTotals sums line-level amounts into the transaction's financial
// fields. Rounding happens only at the aggregate, to 2 decimals.
func AggregateTotals(lines []domain.TransactionLine) (subtotal, discount, tax, total decimal.Decimal) {
	for _, l := range lines {
		subtotal = subtotal.Add(l.Quantity.Mul(l.UnitPrice))
		discount = discount.Add(l.DiscountAmount)
		tax = tax.Add(l.TaxAmount)
	}
	subtotal = subtotal.Round(2)
	discount = discount.Round(2)
	tax = tax.Round(2)
	total = subtotal.Sub(discount).Add(tax)
	return subtotal, discount, tax, total
}

// WeightedAverageCost computes the new PMP after an inbound movement:
// (currentStock*currentPMP + incomingQty*incomingUnitCost) / (currentStock + incomingQty),
// rounded to 2 decimals. currentStock must be read BEFORE the incoming line is
// counted; the incoming quantity enters through the formula only. When the
// denominator is not positive the incoming unit cost wins outright.
func WeightedAverageCost(currentStock, currentPMP, incomingQty, incomingUnitCost decimal.Decimal) decimal.Decimal {
	denominator := currentStock.Add(incomingQty)
	if denominator.LessThanOrEqual(decimal.Zero) {
		return incomingUnitCost.Round(2)
	}
	numerator := currentStock.Mul(currentPMP).Add(incomingQty.Mul(incomingUnitCost))
	return numerator.Div(denominator).Round(2)
}

// NormalizeBalanceForPresentation converts a raw accumulated balance into its
// display sign. ASSET and EXPENSE present debit-positive (raw as computed);
// LIABILITY, EQUITY and INCOME present credit-positive (negated raw). This is
// the single choke point for sign handling: apply it exactly once wherever a
// balance is displayed or aggregated.
func NormalizeBalanceForPresentation(accountType domain.AccountType, rawBalance decimal.Decimal) (decimal.Decimal, error) {
	switch accountType {
	case domain.Asset, domain.Expense:
		return rawBalance, nil
	case domain.Liability, domain.Equity, domain.Income:
		return rawBalance.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s'", accountType)
	}
}

// DenormalizePresentedBalance recovers the raw balance from a displayed one.
// Inverse of NormalizeBalanceForPresentation.
func DenormalizePresentedBalance(accountType domain.AccountType, presented decimal.Decimal) (decimal.Decimal, error) {
	// The transform is its own inverse for every account type.
	return NormalizeBalanceForPresentation(accountType, presented)
}
