package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database shape of a ledger transaction header.
// Metadata is stored as a jsonb column holding the typed payload union.
type Transaction struct {
	TransactionID        string          `db:"transaction_id"`
	CompanyID            string          `db:"company_id"`
	DocumentNumber       string          `db:"document_number"`
	Type                 string          `db:"transaction_type"`
	Status               string          `db:"status"`
	Subtotal             decimal.Decimal `db:"subtotal"`
	DiscountAmount       decimal.Decimal `db:"discount_amount"`
	TaxAmount            decimal.Decimal `db:"tax_amount"`
	Total                decimal.Decimal `db:"total"`
	AmountPaid           decimal.Decimal `db:"amount_paid"`
	ChangeAmount         decimal.Decimal `db:"change_amount"`
	PaymentMethod        *string         `db:"payment_method"`
	BranchID             *string         `db:"branch_id"`
	PointOfSaleID        *string         `db:"point_of_sale_id"`
	CashSessionID        *string         `db:"cash_session_id"`
	StorageID            *string         `db:"storage_id"`
	TargetStorageID      *string         `db:"target_storage_id"`
	CustomerID           *string         `db:"customer_id"`
	SupplierID           *string         `db:"supplier_id"`
	ShareholderID        *string         `db:"shareholder_id"`
	BankAccountKey       *string         `db:"bank_account_key"`
	RelatedTransactionID *string         `db:"related_transaction_id"`
	ExternalReference    *string         `db:"external_reference"`
	UserID               string          `db:"user_id"`
	Metadata             []byte          `db:"metadata"`
	AuditFields
}

// TransactionLine is the database shape of one priced movement.
type TransactionLine struct {
	LineID           string          `db:"line_id"`
	TransactionID    string          `db:"transaction_id"`
	LineNumber       int             `db:"line_number"`
	ProductID        *string         `db:"product_id"`
	ProductVariantID *string         `db:"product_variant_id"`
	Quantity         decimal.Decimal `db:"quantity"`
	ConversionFactor decimal.Decimal `db:"conversion_factor"`
	QuantityInBase   decimal.Decimal `db:"quantity_in_base"`
	UnitSymbol       string          `db:"unit_symbol"`
	UnitPrice        decimal.Decimal `db:"unit_price"`
	UnitCost         decimal.Decimal `db:"unit_cost"`
	DiscountAmount   decimal.Decimal `db:"discount_amount"`
	TaxAmount        decimal.Decimal `db:"tax_amount"`
	Subtotal         decimal.Decimal `db:"subtotal"`
	Total            decimal.Decimal `db:"total"`
	CreatedAt        time.Time       `db:"created_at"`
}
