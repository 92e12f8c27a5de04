package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/velorapos/velora_backend/internal/core/domain"
	"github.com/velorapos/velora_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// Metadata is serialized to its jsonb representation here so repositories
// only ever deal with raw bytes.
func ToModelTransaction(d domain.Transaction) (models.Transaction, error) {
	var meta []byte
	if d.Metadata != nil {
		b, err := json.Marshal(d.Metadata)
		if err != nil {
			return models.Transaction{}, fmt.Errorf("failed to marshal transaction metadata: %w", err)
		}
		meta = b
	}
	var payMethod *string
	if d.PaymentMethod != "" {
		s := string(d.PaymentMethod)
		payMethod = &s
	}
	return models.Transaction{
		TransactionID:        d.TransactionID,
		CompanyID:            d.CompanyID,
		DocumentNumber:       d.DocumentNumber,
		Type:                 string(d.Type),
		Status:               string(d.Status),
		Subtotal:             d.Subtotal,
		DiscountAmount:       d.DiscountAmount,
		TaxAmount:            d.TaxAmount,
		Total:                d.Total,
		AmountPaid:           d.AmountPaid,
		ChangeAmount:         d.ChangeAmount,
		PaymentMethod:        payMethod,
		BranchID:             d.BranchID,
		PointOfSaleID:        d.PointOfSaleID,
		CashSessionID:        d.CashSessionID,
		StorageID:            d.StorageID,
		TargetStorageID:      d.TargetStorageID,
		CustomerID:           d.CustomerID,
		SupplierID:           d.SupplierID,
		ShareholderID:        d.ShareholderID,
		BankAccountKey:       d.BankAccountKey,
		RelatedTransactionID: d.RelatedTransactionID,
		ExternalReference:    d.ExternalReference,
		UserID:               d.UserID,
		Metadata:             meta,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
func ToDomainTransaction(m models.Transaction) (domain.Transaction, error) {
	var meta *domain.Metadata
	if len(m.Metadata) > 0 {
		meta = &domain.Metadata{}
		if err := json.Unmarshal(m.Metadata, meta); err != nil {
			return domain.Transaction{}, fmt.Errorf("failed to unmarshal transaction metadata: %w", err)
		}
	}
	var payMethod domain.PaymentMethod
	if m.PaymentMethod != nil {
		payMethod = domain.PaymentMethod(*m.PaymentMethod)
	}
	return domain.Transaction{
		TransactionID:        m.TransactionID,
		CompanyID:            m.CompanyID,
		DocumentNumber:       m.DocumentNumber,
		Type:                 domain.TransactionType(m.Type),
		Status:               domain.TransactionStatus(m.Status),
		Subtotal:             m.Subtotal,
		DiscountAmount:       m.DiscountAmount,
		TaxAmount:            m.TaxAmount,
		Total:                m.Total,
		AmountPaid:           m.AmountPaid,
		ChangeAmount:         m.ChangeAmount,
		PaymentMethod:        payMethod,
		BranchID:             m.BranchID,
		PointOfSaleID:        m.PointOfSaleID,
		CashSessionID:        m.CashSessionID,
		StorageID:            m.StorageID,
		TargetStorageID:      m.TargetStorageID,
		CustomerID:           m.CustomerID,
		SupplierID:           m.SupplierID,
		ShareholderID:        m.ShareholderID,
		BankAccountKey:       m.BankAccountKey,
		RelatedTransactionID: m.RelatedTransactionID,
		ExternalReference:    m.ExternalReference,
		UserID:               m.UserID,
		Metadata:             meta,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) ([]domain.Transaction, error) {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		d, err := ToDomainTransaction(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}

// ToModelTransactionLine converts a domain TransactionLine to a model TransactionLine
func ToModelTransactionLine(d domain.TransactionLine) models.TransactionLine {
	return models.TransactionLine{
		LineID:           d.LineID,
		TransactionID:    d.TransactionID,
		LineNumber:       d.LineNumber,
		ProductID:        d.ProductID,
		ProductVariantID: d.ProductVariantID,
		Quantity:         d.Quantity,
		ConversionFactor: d.ConversionFactor,
		QuantityInBase:   d.QuantityInBase,
		UnitSymbol:       d.UnitSymbol,
		UnitPrice:        d.UnitPrice,
		UnitCost:         d.UnitCost,
		DiscountAmount:   d.DiscountAmount,
		TaxAmount:        d.TaxAmount,
		Subtotal:         d.Subtotal,
		Total:            d.Total,
		CreatedAt:        d.CreatedAt,
	}
}

// ToDomainTransactionLine converts a model TransactionLine to a domain TransactionLine
func ToDomainTransactionLine(m models.TransactionLine) domain.TransactionLine {
	return domain.TransactionLine{
		LineID:           m.LineID,
		TransactionID:    m.TransactionID,
		LineNumber:       m.LineNumber,
		ProductID:        m.ProductID,
		ProductVariantID: m.ProductVariantID,
		Quantity:         m.Quantity,
		ConversionFactor: m.ConversionFactor,
		QuantityInBase:   m.QuantityInBase,
		UnitSymbol:       m.UnitSymbol,
		UnitPrice:        m.UnitPrice,
		UnitCost:         m.UnitCost,
		DiscountAmount:   m.DiscountAmount,
		TaxAmount:        m.TaxAmount,
		Subtotal:         m.Subtotal,
		Total:            m.Total,
		CreatedAt:        m.CreatedAt,
	}
}

// ToDomainTransactionLineSlice converts a slice of model TransactionLines to a slice of domain TransactionLines
func ToDomainTransactionLineSlice(ms []models.TransactionLine) []domain.TransactionLine {
	ds := make([]domain.TransactionLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransactionLine(m)
	}
	return ds
}
