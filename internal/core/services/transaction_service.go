package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/velorapos/velora_backend/internal/apperrors"
	"github.com/velorapos/velora_backend/internal/core/domain"
	portsrepo "github.com/velorapos/velora_backend/internal/core/ports/repositories"
	portssvc "github.com/velorapos/velora_backend/internal/core/ports/services"
	"github.com/velorapos/velora_backend/internal/dto"
	"github.com/velorapos/velora_backend/internal/utils/accounting"
	"github.com/velorapos/velora_backend/internal/utils/pagination"
	"github.com/velorapos/velora_backend/pkg/cache"
)

var (
	ErrNoLines             = errors.New("transaction must have at least one line")
	ErrLineQuantity        = errors.New("line quantity must be positive")
	ErrLineFactor          = errors.New("line conversion factor must be positive")
	ErrLinePrice           = errors.New("line unit price must not be negative")
	ErrNegativeTotal       = errors.New("computed transaction total is negative")
	ErrMissingVariant      = errors.New("stock-moving lines require a product variant")
	ErrUserCannotAct       = errors.New("user is inactive or deleted")
	ErrSessionNotOpen      = errors.New("cash session is not open")
	ErrNotCancellable      = errors.New("only sales and purchases can be cancelled")
	ErrAlreadyCancelled    = errors.New("transaction is already cancelled")
	ErrCompanyMismatch     = errors.New("transaction does not belong to this company")
	ErrMissingStorage      = errors.New("stock-moving transactions require a storage")
	ErrMissingTargetStorage = errors.New("transfers require a target storage")
)

// reversalTypes maps each cancellable type to the type of its reversal.
var reversalTypes = map[domain.TransactionType]domain.TransactionType{
	domain.Sale:     domain.SaleReturn,
	domain.Purchase: domain.PurchaseReturn,
}

// transactionService is the single write path of the ledger and the primary
// history reader.
type transactionService struct {
	BaseService
	txnRepo         portsrepo.TransactionRepositoryWithTx
	variantRepo     portsrepo.VariantRepositoryFacade
	cashSessionRepo portsrepo.CashSessionRepositoryFacade
	userRepo        portsrepo.UserRepositoryFacade
	stockCache      *cache.StockCache
}

// NewTransactionService creates the transaction engine.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryWithTx,
	variantRepo portsrepo.VariantRepositoryFacade,
	cashSessionRepo portsrepo.CashSessionRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	authorizer portssvc.CompanyAuthorizerSvc,
	stockCache *cache.StockCache,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService:     BaseService{CompanyAuthorizer: authorizer},
		txnRepo:         txnRepo,
		variantRepo:     variantRepo,
		cashSessionRepo: cashSessionRepo,
		userRepo:        userRepo,
		stockCache:      stockCache,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction validates one business event end to end and persists it
// atomically. The transaction is born CONFIRMED; nothing about it is editable
// afterwards.
func (s *transactionService) CreateTransaction(ctx context.Context, companyID string, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, req.Type)
	}
	if len(req.Lines) == 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNoLines)
	}
	if req.Metadata != nil {
		if err := req.Metadata.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
		}
	}

	user, err := s.userRepo.FindUserByID(ctx, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: creating user %s not found", apperrors.ErrReference, creatorUserID)
		}
		return nil, err
	}
	if !user.CanAct() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrState, ErrUserCannotAct)
	}

	if err := s.validateScope(req); err != nil {
		return nil, err
	}
	if req.CashSessionID != nil {
		if err := s.requireOpenSession(ctx, companyID, *req.CashSessionID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	lines, err := s.buildLines(ctx, req, now)
	if err != nil {
		return nil, err
	}

	subtotal, discount, tax, total := accounting.AggregateTotals(lines)
	if total.IsNegative() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNegativeTotal)
	}

	change := decimal.Zero
	if req.AmountPaid.GreaterThan(total) {
		change = req.AmountPaid.Sub(total)
	}

	txn := domain.Transaction{
		TransactionID:        uuid.NewString(),
		CompanyID:            companyID,
		Type:                 req.Type,
		Status:               domain.Confirmed,
		Subtotal:             subtotal,
		DiscountAmount:       discount,
		TaxAmount:            tax,
		Total:                total,
		AmountPaid:           req.AmountPaid,
		ChangeAmount:         change,
		PaymentMethod:        req.PaymentMethod,
		BranchID:             req.BranchID,
		PointOfSaleID:        req.PointOfSaleID,
		CashSessionID:        req.CashSessionID,
		StorageID:            req.StorageID,
		TargetStorageID:      req.TargetStorageID,
		CustomerID:           req.CustomerID,
		SupplierID:           req.SupplierID,
		ShareholderID:        req.ShareholderID,
		BankAccountKey:       req.BankAccountKey,
		RelatedTransactionID: req.RelatedTransactionID,
		ExternalReference:    req.ExternalReference,
		UserID:               creatorUserID,
		Metadata:             req.Metadata,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if req.DocumentNumber != nil {
		txn.DocumentNumber = *req.DocumentNumber
	}

	saved, err := s.txnRepo.SaveTransaction(ctx, txn, lines)
	if err != nil {
		s.LogError(ctx, err, "failed to save transaction",
			slog.String("company_id", companyID),
			slog.String("transaction_type", string(req.Type)))
		return nil, err
	}
	s.invalidateStock(ctx, saved.Lines)

	s.LogInfo(ctx, "transaction created",
		slog.String("transaction_id", saved.TransactionID),
		slog.String("document_number", saved.DocumentNumber),
		slog.String("transaction_type", string(saved.Type)))
	return saved, nil
}

// validateScope checks the reference fields each transaction type requires.
func (s *transactionService) validateScope(req dto.CreateTransactionRequest) error {
	if req.Type.IsInbound() || req.Type.IsOutbound() {
		if req.StorageID == nil {
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrMissingStorage)
		}
	}
	if req.Type == domain.TransferOut && req.TargetStorageID == nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrMissingTargetStorage)
	}
	return nil
}

// requireOpenSession loads the referenced session and checks it can accept
// movements for this company.
func (s *transactionService) requireOpenSession(ctx context.Context, companyID, sessionID string) error {
	session, err := s.cashSessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: cash session %s not found", apperrors.ErrReference, sessionID)
		}
		return err
	}
	if session.CompanyID != companyID {
		return fmt.Errorf("%w: cash session %s not found", apperrors.ErrReference, sessionID)
	}
	if !session.IsOpen() {
		return fmt.Errorf("%w: %s", apperrors.ErrState, ErrSessionNotOpen)
	}
	return nil
}

// buildLines validates and materializes the ordered lines, resolving unit
// metadata from the referenced variants. Line numbers are dense, 1-based, in
// request order.
func (s *transactionService) buildLines(ctx context.Context, req dto.CreateTransactionRequest, now time.Time) ([]domain.TransactionLine, error) {
	movesStock := req.Type.IsInbound() || req.Type.IsOutbound()

	variantIDs := make([]string, 0, len(req.Lines))
	for _, l := range req.Lines {
		if l.ProductVariantID != nil {
			variantIDs = append(variantIDs, *l.ProductVariantID)
		} else if movesStock {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrMissingVariant)
		}
	}
	variants := map[string]domain.ProductVariant{}
	if len(variantIDs) > 0 {
		var err error
		variants, err = s.variantRepo.FindVariantsByIDs(ctx, variantIDs)
		if err != nil {
			return nil, err
		}
	}

	lines := make([]domain.TransactionLine, 0, len(req.Lines))
	for i, l := range req.Lines {
		if !l.Quantity.IsPositive() {
			return nil, fmt.Errorf("%w: line %d: %s", apperrors.ErrValidation, i+1, ErrLineQuantity)
		}
		if l.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: line %d: %s", apperrors.ErrValidation, i+1, ErrLinePrice)
		}

		factor := l.ConversionFactor
		unitSymbol := l.UnitSymbol
		if l.ProductVariantID != nil {
			variant, ok := variants[*l.ProductVariantID]
			if !ok {
				return nil, fmt.Errorf("%w: product variant %s not found", apperrors.ErrReference, *l.ProductVariantID)
			}
			if factor.IsZero() {
				factor = variant.ConversionFactor
			}
			if unitSymbol == "" {
				unitSymbol = variant.UnitSymbol
			}
		}
		if factor.IsZero() {
			factor = decimal.NewFromInt(1)
		}
		if factor.IsNegative() {
			return nil, fmt.Errorf("%w: line %d: %s", apperrors.ErrValidation, i+1, ErrLineFactor)
		}

		subtotal := l.Quantity.Mul(l.UnitPrice).Round(2)
		lines = append(lines, domain.TransactionLine{
			LineID:           uuid.NewString(),
			LineNumber:       i + 1,
			ProductID:        l.ProductID,
			ProductVariantID: l.ProductVariantID,
			Quantity:         l.Quantity,
			ConversionFactor: factor,
			QuantityInBase:   l.Quantity.Mul(factor),
			UnitSymbol:       unitSymbol,
			UnitPrice:        l.UnitPrice,
			UnitCost:         l.UnitCost,
			DiscountAmount:   l.DiscountAmount,
			TaxAmount:        l.TaxAmount,
			Subtotal:         subtotal,
			Total:            accounting.LineTotal(l.Quantity, l.UnitPrice, l.DiscountAmount, l.TaxAmount),
			CreatedAt:        now,
		})
	}
	return lines, nil
}

// CancelTransaction corrects a confirmed SALE or PURCHASE by emitting its
// reversal. The reversal commits first; only then is the original stamped
// CANCELLED with a cancellation record. A crash between the two steps leaves
// a reversal whose RelatedTransactionID still pairs it with the original.
func (s *transactionService) CancelTransaction(ctx context.Context, companyID string, transactionID string, userID string, reason string) (*domain.Transaction, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	original, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if original.CompanyID != companyID {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrNotFound, ErrCompanyMismatch)
	}
	if original.Status == domain.Cancelled {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrState, ErrAlreadyCancelled)
	}
	reversalType, ok := reversalTypes[original.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupported, ErrNotCancellable)
	}

	originalLines, err := s.txnRepo.FindLinesByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	reversalID := uuid.NewString()
	reversalLines := make([]domain.TransactionLine, len(originalLines))
	for i, l := range originalLines {
		l.LineID = uuid.NewString()
		l.TransactionID = reversalID
		l.CreatedAt = now
		reversalLines[i] = l
	}

	reversal := domain.Transaction{
		TransactionID:        reversalID,
		CompanyID:            companyID,
		Type:                 reversalType,
		Status:               domain.Confirmed,
		Subtotal:             original.Subtotal,
		DiscountAmount:       original.DiscountAmount,
		TaxAmount:            original.TaxAmount,
		Total:                original.Total,
		PaymentMethod:        original.PaymentMethod,
		BranchID:             original.BranchID,
		PointOfSaleID:        original.PointOfSaleID,
		CashSessionID:        original.CashSessionID,
		StorageID:            original.StorageID,
		TargetStorageID:      original.TargetStorageID,
		CustomerID:           original.CustomerID,
		SupplierID:           original.SupplierID,
		RelatedTransactionID: &original.TransactionID,
		UserID:               userID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	saved, err := s.txnRepo.SaveTransaction(ctx, reversal, reversalLines)
	if err != nil {
		s.LogError(ctx, err, "failed to save reversal",
			slog.String("original_transaction_id", transactionID))
		return nil, err
	}

	meta := original.Metadata
	if meta == nil {
		meta = &domain.Metadata{}
	}
	meta.Cancellation = &domain.CancellationRecord{
		ReversalTransactionID: saved.TransactionID,
		ReversalDocumentNo:    saved.DocumentNumber,
		Reason:                reason,
		CancelledBy:           userID,
		CancelledAt:           now,
	}
	if err := s.txnRepo.UpdateTransactionStatus(ctx, transactionID, domain.Cancelled, meta, userID, now); err != nil {
		// The reversal is durable; the cancelled stamp is the annotation half.
		s.LogError(ctx, err, "reversal committed but original status flip failed",
			slog.String("original_transaction_id", transactionID),
			slog.String("reversal_transaction_id", saved.TransactionID))
		return nil, err
	}
	s.invalidateStock(ctx, saved.Lines)

	s.LogInfo(ctx, "transaction cancelled",
		slog.String("original_transaction_id", transactionID),
		slog.String("reversal_transaction_id", saved.TransactionID),
		slog.String("reversal_document_number", saved.DocumentNumber))
	return saved, nil
}

// GetTransactionByID retrieves a transaction with its lines.
func (s *transactionService) GetTransactionByID(ctx context.Context, companyID string, transactionID string, requestingUserID string) (*domain.Transaction, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	lines, err := s.txnRepo.FindLinesByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	txn.Lines = lines
	return txn, nil
}

// ListTransactions retrieves a filtered page of history.
func (s *transactionService) ListTransactions(ctx context.Context, companyID string, userID string, filters dto.TransactionFilters) (*dto.ListTransactionsResponse, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	txns, total, err := s.txnRepo.ListTransactions(ctx, companyID, filters)
	if err != nil {
		return nil, err
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	var nextCursor string
	if len(txns) == limit {
		last := txns[len(txns)-1]
		nextCursor = pagination.EncodeCursor(last.CreatedAt, last.TransactionID)
	}

	resp := dto.ToListTransactionsResponse(txns, total, nextCursor)
	return &resp, nil
}

func (s *transactionService) invalidateStock(ctx context.Context, lines []domain.TransactionLine) {
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		if l.ProductVariantID != nil {
			ids = append(ids, *l.ProductVariantID)
		}
	}
	s.stockCache.Invalidate(ctx, ids...)
}
