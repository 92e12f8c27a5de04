package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger-affecting business event.
type TransactionType string

const (
	Sale                  TransactionType = "SALE"
	SaleReturn            TransactionType = "SALE_RETURN"
	Purchase              TransactionType = "PURCHASE"
	PurchaseReturn        TransactionType = "PURCHASE_RETURN"
	TransferIn            TransactionType = "TRANSFER_IN"
	TransferOut           TransactionType = "TRANSFER_OUT"
	AdjustmentIn          TransactionType = "ADJUSTMENT_IN"
	AdjustmentOut         TransactionType = "ADJUSTMENT_OUT"
	PaymentIn             TransactionType = "PAYMENT_IN"
	PaymentOut            TransactionType = "PAYMENT_OUT"
	OperatingExpense      TransactionType = "OPERATING_EXPENSE"
	CashDeposit           TransactionType = "CASH_DEPOSIT"
	CashSessionDeposit    TransactionType = "CASH_SESSION_DEPOSIT"
	CashSessionWithdrawal TransactionType = "CASH_SESSION_WITHDRAWAL"
)

// TransactionStatus is the lifecycle state of a transaction. There is no
// draft state: a transaction is confirmed on creation and the only allowed
// mutation afterwards is the flip to CANCELLED driven by a reversal.
type TransactionStatus string

const (
	Confirmed TransactionStatus = "CONFIRMED"
	Cancelled TransactionStatus = "CANCELLED"
)

// PaymentMethod records how a transaction was settled.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentCard     PaymentMethod = "CARD"
	PaymentTransfer PaymentMethod = "TRANSFER"
	PaymentMixed    PaymentMethod = "MIXED"
)

// inboundTypes and outboundTypes partition the stock-moving transaction types.
// Treasury types appear in neither set and never touch stock.
var inboundTypes = map[TransactionType]bool{
	Purchase:     true,
	SaleReturn:   true,
	TransferIn:   true,
	AdjustmentIn: true,
}

var outboundTypes = map[TransactionType]bool{
	Sale:           true,
	PurchaseReturn: true,
	TransferOut:    true,
	AdjustmentOut:  true,
}

// IsInbound reports whether lines of this type add to stock.
func (t TransactionType) IsInbound() bool { return inboundTypes[t] }

// IsOutbound reports whether lines of this type remove from stock.
func (t TransactionType) IsOutbound() bool { return outboundTypes[t] }

// IsTreasury reports whether this type is a money-only movement. Treasury
// document numbers are padded to 6 digits, operational ones to 8.
func (t TransactionType) IsTreasury() bool {
	switch t {
	case PaymentIn, PaymentOut, OperatingExpense, CashDeposit, CashSessionDeposit, CashSessionWithdrawal:
		return true
	}
	return false
}

// documentPrefixes maps each transaction type to its document number prefix.
var documentPrefixes = map[TransactionType]string{
	Sale:                  "SAL",
	SaleReturn:            "SRT",
	Purchase:              "PUR",
	PurchaseReturn:        "PRT",
	TransferIn:            "TRI",
	TransferOut:           "TRO",
	AdjustmentIn:          "ADI",
	AdjustmentOut:         "ADO",
	PaymentIn:             "PIN",
	PaymentOut:            "POU",
	OperatingExpense:      "EXP",
	CashDeposit:           "DEP",
	CashSessionDeposit:    "CSD",
	CashSessionWithdrawal: "CSW",
}

// DocumentPrefix returns the document-number prefix for this type, and false
// for unknown types.
func (t TransactionType) DocumentPrefix() (string, bool) {
	p, ok := documentPrefixes[t]
	return p, ok
}

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	_, ok := documentPrefixes[t]
	return ok
}

// Transaction is an immutable business event with ordered priced lines.
// Financial fields and lines are never edited after a CONFIRMED insert; the
// single sanctioned mutation is Status -> CANCELLED plus a cancellation
// metadata annotation, applied only after a reversal has committed.
type Transaction struct {
	TransactionID        string            `json:"transactionID"`
	CompanyID            string            `json:"companyID"`
	DocumentNumber       string            `json:"documentNumber"`
	Type                 TransactionType   `json:"transactionType"`
	Status               TransactionStatus `json:"status"`
	Subtotal             decimal.Decimal   `json:"subtotal"`
	DiscountAmount       decimal.Decimal   `json:"discountAmount"`
	TaxAmount            decimal.Decimal   `json:"taxAmount"`
	Total                decimal.Decimal   `json:"total"`
	AmountPaid           decimal.Decimal   `json:"amountPaid"`
	ChangeAmount         decimal.Decimal   `json:"changeAmount"`
	PaymentMethod        PaymentMethod     `json:"paymentMethod,omitempty"`
	BranchID             *string           `json:"branchID,omitempty"`
	PointOfSaleID        *string           `json:"pointOfSaleID,omitempty"`
	CashSessionID        *string           `json:"cashSessionID,omitempty"`
	StorageID            *string           `json:"storageID,omitempty"`
	TargetStorageID      *string           `json:"targetStorageID,omitempty"`
	CustomerID           *string           `json:"customerID,omitempty"`
	SupplierID           *string           `json:"supplierID,omitempty"`
	ShareholderID        *string           `json:"shareholderID,omitempty"`
	BankAccountKey       *string           `json:"bankAccountKey,omitempty"`
	RelatedTransactionID *string           `json:"relatedTransactionID,omitempty"`
	ExternalReference    *string           `json:"externalReference,omitempty"`
	UserID               string            `json:"userID"`
	Metadata             *Metadata         `json:"metadata,omitempty"`
	Lines                []TransactionLine `json:"lines,omitempty"`
	AuditFields
}

// TransactionLine is one priced movement within a transaction. LineNumber is
// 1-based and dense, in insertion order.
type TransactionLine struct {
	LineID           string          `json:"lineID"`
	TransactionID    string          `json:"transactionID"`
	LineNumber       int             `json:"lineNumber"`
	ProductID        *string         `json:"productID,omitempty"`
	ProductVariantID *string         `json:"productVariantID,omitempty"`
	Quantity         decimal.Decimal `json:"quantity"`
	ConversionFactor decimal.Decimal `json:"conversionFactor"`
	QuantityInBase   decimal.Decimal `json:"quantityInBase"`
	UnitSymbol       string          `json:"unitSymbol,omitempty"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	UnitCost         decimal.Decimal `json:"unitCost"`
	DiscountAmount   decimal.Decimal `json:"discountAmount"`
	TaxAmount        decimal.Decimal `json:"taxAmount"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	Total            decimal.Decimal `json:"total"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// CostingUnitCost returns the cost used for weighted-average updates: the
// explicit unit cost when given, otherwise the unit price.
func (l TransactionLine) CostingUnitCost() decimal.Decimal {
	if l.UnitCost.IsZero() {
		return l.UnitPrice
	}
	return l.UnitCost
}
