package dto

import (
	"time"

	"github.com/velorapos/velora_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionLineRequest is one priced movement within a new transaction.
// Conversion factor and unit symbol are resolved from the variant when omitted.
type CreateTransactionLineRequest struct {
	ProductID        *string         `json:"productID,omitempty"`
	ProductVariantID *string         `json:"productVariantID,omitempty"`
	Quantity         decimal.Decimal `json:"quantity" binding:"required"`
	ConversionFactor decimal.Decimal `json:"conversionFactor,omitempty"`
	UnitSymbol       string          `json:"unitSymbol,omitempty"`
	UnitPrice        decimal.Decimal `json:"unitPrice" binding:"required"`
	UnitCost         decimal.Decimal `json:"unitCost,omitempty"`
	DiscountAmount   decimal.Decimal `json:"discountAmount,omitempty"`
	TaxAmount        decimal.Decimal `json:"taxAmount,omitempty"`
}

// CreateTransactionRequest is the input shape of the single ledger write path.
type CreateTransactionRequest struct {
	Type                 domain.TransactionType         `json:"transactionType" binding:"required"`
	Lines                []CreateTransactionLineRequest `json:"lines" binding:"required,min=1,dive"`
	PaymentMethod        domain.PaymentMethod           `json:"paymentMethod,omitempty"`
	AmountPaid           decimal.Decimal                `json:"amountPaid,omitempty"`
	BranchID             *string                        `json:"branchID,omitempty"`
	PointOfSaleID        *string                        `json:"pointOfSaleID,omitempty"`
	CashSessionID        *string                        `json:"cashSessionID,omitempty"`
	StorageID            *string                        `json:"storageID,omitempty"`
	TargetStorageID      *string                        `json:"targetStorageID,omitempty"`
	CustomerID           *string                        `json:"customerID,omitempty"`
	SupplierID           *string                        `json:"supplierID,omitempty"`
	ShareholderID        *string                        `json:"shareholderID,omitempty"`
	BankAccountKey       *string                        `json:"bankAccountKey,omitempty"`
	RelatedTransactionID *string                        `json:"relatedTransactionID,omitempty"`
	ExternalReference    *string                        `json:"externalReference,omitempty"`
	DocumentNumber       *string                        `json:"documentNumber,omitempty"`
	Metadata             *domain.Metadata               `json:"metadata,omitempty"`
}

// CancelTransactionRequest carries the reversal reason.
type CancelTransactionRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// TransactionFilters narrows and pages the transaction history listing.
type TransactionFilters struct {
	Type          *domain.TransactionType   `form:"type"`
	Status        *domain.TransactionStatus `form:"status"`
	BranchID      *string                   `form:"branchID"`
	CashSessionID *string                   `form:"cashSessionID"`
	VariantID     *string                   `form:"variantID"`
	From          *time.Time                `form:"from" time_format:"2006-01-02"`
	To            *time.Time                `form:"to" time_format:"2006-01-02"`
	Cursor        *string                   `form:"cursor"`
	Limit         int                       `form:"limit"`
	Offset        int                       `form:"offset"`
}

// TransactionLineResponse is the wire shape of one line.
type TransactionLineResponse struct {
	LineID           string          `json:"lineID"`
	LineNumber       int             `json:"lineNumber"`
	ProductID        *string         `json:"productID,omitempty"`
	ProductVariantID *string         `json:"productVariantID,omitempty"`
	Quantity         decimal.Decimal `json:"quantity"`
	QuantityInBase   decimal.Decimal `json:"quantityInBase"`
	UnitSymbol       string          `json:"unitSymbol,omitempty"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	UnitCost         decimal.Decimal `json:"unitCost"`
	DiscountAmount   decimal.Decimal `json:"discountAmount"`
	TaxAmount        decimal.Decimal `json:"taxAmount"`
	Total            decimal.Decimal `json:"total"`
}

// TransactionResponse is the wire shape of a transaction.
type TransactionResponse struct {
	TransactionID        string                    `json:"transactionID"`
	DocumentNumber       string                    `json:"documentNumber"`
	Type                 domain.TransactionType    `json:"transactionType"`
	Status               domain.TransactionStatus  `json:"status"`
	Subtotal             decimal.Decimal           `json:"subtotal"`
	DiscountAmount       decimal.Decimal           `json:"discountAmount"`
	TaxAmount            decimal.Decimal           `json:"taxAmount"`
	Total                decimal.Decimal           `json:"total"`
	AmountPaid           decimal.Decimal           `json:"amountPaid"`
	ChangeAmount         decimal.Decimal           `json:"changeAmount"`
	RelatedTransactionID *string                   `json:"relatedTransactionID,omitempty"`
	CashSessionID        *string                   `json:"cashSessionID,omitempty"`
	Metadata             *domain.Metadata          `json:"metadata,omitempty"`
	Lines                []TransactionLineResponse `json:"lines,omitempty"`
	CreatedAt            time.Time                 `json:"createdAt"`
	CreatedBy            string                    `json:"createdBy"`
}

// ListTransactionsResponse pages transaction history with a total match
// count. NextCursor is set while more pages remain.
type ListTransactionsResponse struct {
	Data       []TransactionResponse `json:"data"`
	Total      int64                 `json:"total"`
	NextCursor string                `json:"nextCursor,omitempty"`
}

// ToTransactionLineResponse converts a domain line to its wire shape.
func ToTransactionLineResponse(l domain.TransactionLine) TransactionLineResponse {
	return TransactionLineResponse{
		LineID:           l.LineID,
		LineNumber:       l.LineNumber,
		ProductID:        l.ProductID,
		ProductVariantID: l.ProductVariantID,
		Quantity:         l.Quantity,
		QuantityInBase:   l.QuantityInBase,
		UnitSymbol:       l.UnitSymbol,
		UnitPrice:        l.UnitPrice,
		UnitCost:         l.UnitCost,
		DiscountAmount:   l.DiscountAmount,
		TaxAmount:        l.TaxAmount,
		Total:            l.Total,
	}
}

// ToTransactionResponse converts a domain transaction to its wire shape.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		TransactionID:        t.TransactionID,
		DocumentNumber:       t.DocumentNumber,
		Type:                 t.Type,
		Status:               t.Status,
		Subtotal:             t.Subtotal,
		DiscountAmount:       t.DiscountAmount,
		TaxAmount:            t.TaxAmount,
		Total:                t.Total,
		AmountPaid:           t.AmountPaid,
		ChangeAmount:         t.ChangeAmount,
		RelatedTransactionID: t.RelatedTransactionID,
		CashSessionID:        t.CashSessionID,
		Metadata:             t.Metadata,
		CreatedAt:            t.CreatedAt,
		CreatedBy:            t.CreatedBy,
	}
	if len(t.Lines) > 0 {
		resp.Lines = make([]TransactionLineResponse, len(t.Lines))
		for i, l := range t.Lines {
			resp.Lines[i] = ToTransactionLineResponse(l)
		}
	}
	return resp
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

// ToListTransactionsResponse wraps a history page with its total match count
// and the cursor for the next page.
func ToListTransactionsResponse(txns []domain.Transaction, total int64, nextCursor string) ListTransactionsResponse {
	return ListTransactionsResponse{
		Data:       ToTransactionResponses(txns),
		Total:      total,
		NextCursor: nextCursor,
	}
}
