package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/velorapos/velora_backend/internal/apperrors"
	"github.com/velorapos/velora_backend/internal/core/domain"
	portsrepo "github.com/velorapos/velora_backend/internal/core/ports/repositories"
	"github.com/velorapos/velora_backend/internal/dto"
	"github.com/velorapos/velora_backend/internal/models"
	"github.com/velorapos/velora_backend/internal/utils/accounting"
	"github.com/velorapos/velora_backend/internal/utils/mapping"
	"github.com/velorapos/velora_backend/internal/utils/pagination"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for the transaction log.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryWithTx
var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

// stockDeltaCase signs quantity_in_base by transaction type: inbound positive,
// outbound negative, treasury contributes nothing.
const stockDeltaCase = `
	CASE
		WHEN t.transaction_type IN ('PURCHASE', 'SALE_RETURN', 'TRANSFER_IN', 'ADJUSTMENT_IN') THEN l.quantity_in_base
		WHEN t.transaction_type IN ('SALE', 'PURCHASE_RETURN', 'TRANSFER_OUT', 'ADJUSTMENT_OUT') THEN -l.quantity_in_base
		ELSE 0
	END`

const transactionColumns = `
	transaction_id, company_id, document_number, transaction_type, status,
	subtotal, discount_amount, tax_amount, total, amount_paid, change_amount,
	payment_method, branch_id, point_of_sale_id, cash_session_id,
	storage_id, target_storage_id, customer_id, supplier_id, shareholder_id,
	bank_account_key, related_transaction_id, external_reference,
	user_id, metadata, created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `
	line_id, transaction_id, line_number, product_id, product_variant_id,
	quantity, conversion_factor, quantity_in_base, unit_symbol,
	unit_price, unit_cost, discount_amount, tax_amount, subtotal, total, created_at`

// SaveTransaction persists a transaction header and its lines as one atomic
// unit. Inside a single DB transaction it assigns the document number from the
// per-company per-type sequence, re-verifies under lock that a sale's cash
// session is still open, locks and re-averages the PMP of every variant on a
// PURCHASE line, inserts the header, and batch-inserts the lines. Any failure
// rolls the whole unit back.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, lines []domain.TransactionLine) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // no-op once committed

	// 1. Assign the document number from the locked sequence row, unless the
	// caller supplied one (reversals never do; imports may).
	if txn.DocumentNumber == "" {
		seq, err := r.nextSequenceValue(ctx, tx, txn.CompanyID, txn.Type)
		if err != nil {
			return nil, err
		}
		docNo, err := accounting.FormatDocumentNumber(txn.Type, seq)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to format document number", err)
		}
		txn.DocumentNumber = docNo
	}

	// 2. The session was open when the service admitted the sale, but it may
	// have closed since. Re-check under a row lock so the close and this
	// write serialize.
	if txn.Type == domain.Sale && txn.CashSessionID != nil {
		if err := r.lockOpenSession(ctx, tx, *txn.CashSessionID); err != nil {
			return nil, err
		}
	}

	// 3. Lock and re-average the PMP of purchased variants before the new
	// lines land, so the stock replay still reflects the state before this
	// transaction.
	if txn.Type == domain.Purchase {
		if err := r.applyPurchaseCosting(ctx, tx, txn, lines); err != nil {
			return nil, err
		}
	}

	// 4. Insert the header.
	modelTxn, err := mapping.ToModelTransaction(txn)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to map transaction "+txn.TransactionID, err)
	}
	headerQuery := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		        $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29);
	`
	_, err = tx.Exec(ctx, headerQuery,
		modelTxn.TransactionID,
		modelTxn.CompanyID,
		modelTxn.DocumentNumber,
		modelTxn.Type,
		modelTxn.Status,
		modelTxn.Subtotal,
		modelTxn.DiscountAmount,
		modelTxn.TaxAmount,
		modelTxn.Total,
		modelTxn.AmountPaid,
		modelTxn.ChangeAmount,
		modelTxn.PaymentMethod,
		modelTxn.BranchID,
		modelTxn.PointOfSaleID,
		modelTxn.CashSessionID,
		modelTxn.StorageID,
		modelTxn.TargetStorageID,
		modelTxn.CustomerID,
		modelTxn.SupplierID,
		modelTxn.ShareholderID,
		modelTxn.BankAccountKey,
		modelTxn.RelatedTransactionID,
		modelTxn.ExternalReference,
		modelTxn.UserID,
		modelTxn.Metadata,
		modelTxn.CreatedAt,
		modelTxn.CreatedBy,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to insert transaction "+modelTxn.TransactionID, err)
	}

	// 5. Batch-insert the lines in lineNumber order.
	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO transaction_lines (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	for i := range lines {
		lines[i].TransactionID = txn.TransactionID
		modelLine := mapping.ToModelTransactionLine(lines[i])
		batch.Queue(lineQuery,
			modelLine.LineID,
			modelLine.TransactionID,
			modelLine.LineNumber,
			modelLine.ProductID,
			modelLine.ProductVariantID,
			modelLine.Quantity,
			modelLine.ConversionFactor,
			modelLine.QuantityInBase,
			modelLine.UnitSymbol,
			modelLine.UnitPrice,
			modelLine.UnitCost,
			modelLine.DiscountAmount,
			modelLine.TaxAmount,
			modelLine.Subtotal,
			modelLine.Total,
			modelLine.CreatedAt,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return nil, apperrors.NewStorageError("failed to execute line batch for transaction "+modelTxn.TransactionID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	txn.Lines = lines
	return &txn, nil
}

// nextSequenceValue increments and returns the document sequence for a
// company/type pair, holding a row lock until the surrounding transaction
// commits. Gap-free by construction: concurrent writers serialize here.
func (r *PgxTransactionRepository) nextSequenceValue(ctx context.Context, tx pgx.Tx, companyID string, txType domain.TransactionType) (int64, error) {
	seedQuery := `
		INSERT INTO document_sequences (company_id, transaction_type, next_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (company_id, transaction_type) DO NOTHING;
	`
	if _, err := tx.Exec(ctx, seedQuery, companyID, string(txType)); err != nil {
		return 0, apperrors.NewStorageError("failed to seed document sequence", err)
	}

	var value int64
	lockQuery := `
		UPDATE document_sequences
		SET next_value = next_value + 1
		WHERE company_id = $1 AND transaction_type = $2
		RETURNING next_value - 1;
	`
	if err := tx.QueryRow(ctx, lockQuery, companyID, string(txType)).Scan(&value); err != nil {
		return 0, apperrors.NewStorageError("failed to advance document sequence", err)
	}
	return value, nil
}

// lockOpenSession locks a cash session row and verifies it still accepts
// movements. The lock holds until the surrounding transaction commits, so a
// concurrent close waits behind this write or this write sees the close.
func (r *PgxTransactionRepository) lockOpenSession(ctx context.Context, tx pgx.Tx, sessionID string) error {
	var status string
	var closedAt *time.Time
	query := `SELECT status, closed_at FROM cash_sessions WHERE session_id = $1 FOR UPDATE;`
	if err := tx.QueryRow(ctx, query, sessionID).Scan(&status, &closedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: cash session %s not found", apperrors.ErrReference, sessionID)
		}
		return apperrors.NewStorageError("failed to lock cash session "+sessionID, err)
	}
	session := domain.CashSession{Status: domain.CashSessionStatus(status), ClosedAt: closedAt}
	if !session.IsOpen() {
		return fmt.Errorf("%w: cash session %s is no longer open", apperrors.ErrState, sessionID)
	}
	return nil
}

// applyPurchaseCosting locks each purchased variant row, replays its current
// stock, and overwrites its PMP with the weighted average including the
// incoming line. Multiple lines for the same variant fold left to right.
func (r *PgxTransactionRepository) applyPurchaseCosting(ctx context.Context, tx pgx.Tx, txn domain.Transaction, lines []domain.TransactionLine) error {
	type pending struct {
		stock decimal.Decimal
		pmp   decimal.Decimal
	}
	state := make(map[string]pending)

	for _, line := range lines {
		// Only positive receipts participate in the average.
		if line.ProductVariantID == nil || !line.QuantityInBase.IsPositive() {
			continue
		}
		variantID := *line.ProductVariantID

		st, seen := state[variantID]
		if !seen {
			var pmp decimal.Decimal
			lockQuery := `SELECT pmp FROM product_variants WHERE variant_id = $1 FOR UPDATE;`
			if err := tx.QueryRow(ctx, lockQuery, variantID).Scan(&pmp); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return apperrors.NewNotFoundError("product variant " + variantID + " not found")
				}
				return apperrors.NewStorageError("failed to lock variant "+variantID, err)
			}
			stock, err := r.sumVariantStockInTx(ctx, tx, variantID)
			if err != nil {
				return err
			}
			st = pending{stock: stock, pmp: pmp}
		}

		st.pmp = accounting.WeightedAverageCost(st.stock, st.pmp, line.QuantityInBase, line.CostingUnitCost())
		st.stock = st.stock.Add(line.QuantityInBase)
		state[variantID] = st
	}

	updateQuery := `
		UPDATE product_variants
		SET pmp = $2, last_updated_at = $3, last_updated_by = $4
		WHERE variant_id = $1;
	`
	for variantID, st := range state {
		if _, err := tx.Exec(ctx, updateQuery, variantID, st.pmp, txn.CreatedAt, txn.CreatedBy); err != nil {
			return apperrors.NewStorageError("failed to update PMP for variant "+variantID, err)
		}
	}
	return nil
}

func (r *PgxTransactionRepository) sumVariantStockInTx(ctx context.Context, tx pgx.Tx, variantID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(` + stockDeltaCase + `), 0)
		FROM transaction_lines l
		JOIN transactions t ON t.transaction_id = l.transaction_id
		WHERE l.product_variant_id = $1 AND t.status = 'CONFIRMED';
	`
	var stock decimal.Decimal
	if err := tx.QueryRow(ctx, query, variantID).Scan(&stock); err != nil {
		return decimal.Zero, apperrors.NewStorageError("failed to replay stock for variant "+variantID, err)
	}
	return stock, nil
}

// UpdateTransactionStatus flips a transaction's status and replaces its
// metadata annotation. This is the only UPDATE the transactions table ever
// sees; financial columns and lines stay frozen.
func (r *PgxTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, metadata *domain.Metadata, updatedByUserID string, updatedAt time.Time) error {
	var meta []byte
	if metadata != nil {
		b, err := json.Marshal(metadata)
		if err != nil {
			return apperrors.NewAppError(500, "failed to marshal metadata for transaction "+transactionID, err)
		}
		meta = b
	}
	query := `
		UPDATE transactions
		SET status = $2, metadata = $3, last_updated_at = $4, last_updated_by = $5
		WHERE transaction_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID, string(status), meta, updatedAt, updatedByUserID)
	if err != nil {
		return apperrors.NewStorageError("failed to update status of transaction "+transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindTransactionByID retrieves a transaction header by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	row := r.Pool.QueryRow(ctx, query, transactionID)
	modelTxn, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewStorageError("failed to find transaction "+transactionID, err)
	}
	domainTxn, err := mapping.ToDomainTransaction(modelTxn)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to map transaction "+transactionID, err)
	}
	return &domainTxn, nil
}

// FindLinesByTransactionID retrieves a transaction's lines in lineNumber order.
func (r *PgxTransactionRepository) FindLinesByTransactionID(ctx context.Context, transactionID string) ([]domain.TransactionLine, error) {
	query := `
		SELECT ` + lineColumns + `
		FROM transaction_lines
		WHERE transaction_id = $1
		ORDER BY line_number;
	`
	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query lines for transaction "+transactionID, err)
	}
	defer rows.Close()

	lines := []models.TransactionLine{}
	for rows.Next() {
		l, err := scanTransactionLine(rows)
		if err != nil {
			return nil, apperrors.NewStorageError("failed to scan line for transaction "+transactionID, err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("error iterating lines for transaction "+transactionID, err)
	}
	return mapping.ToDomainTransactionLineSlice(lines), nil
}

// ListTransactions retrieves a filtered page of a company's transactions plus
// the total match count, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, companyID string, filters dto.TransactionFilters) ([]domain.Transaction, int64, error) {
	where := ` WHERE t.company_id = $1`
	args := []interface{}{companyID}

	addFilter := func(clause string, value interface{}) {
		args = append(args, value)
		where += " AND " + clause + "$" + strconv.Itoa(len(args))
	}
	if filters.Type != nil {
		addFilter("t.transaction_type = ", string(*filters.Type))
	}
	if filters.Status != nil {
		addFilter("t.status = ", string(*filters.Status))
	}
	if filters.BranchID != nil {
		addFilter("t.branch_id = ", *filters.BranchID)
	}
	if filters.CashSessionID != nil {
		addFilter("t.cash_session_id = ", *filters.CashSessionID)
	}
	if filters.VariantID != nil {
		addFilter("EXISTS (SELECT 1 FROM transaction_lines l WHERE l.transaction_id = t.transaction_id AND l.product_variant_id = ", *filters.VariantID)
		where += ")"
	}
	if filters.From != nil {
		addFilter("t.created_at >= ", *filters.From)
	}
	if filters.To != nil {
		addFilter("t.created_at < ", *filters.To)
	}
	// the total counts every match; the cursor only narrows the page
	var total int64
	countQuery := `SELECT COUNT(*) FROM transactions t` + where + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewStorageError("failed to count transactions for company "+companyID, err)
	}

	if filters.Cursor != nil && *filters.Cursor != "" {
		cursorAt, cursorID, err := pagination.DecodeCursor(*filters.Cursor)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		args = append(args, cursorAt, cursorID)
		where += " AND (t.created_at, t.transaction_id) < ($" + strconv.Itoa(len(args)-1) + ", $" + strconv.Itoa(len(args)) + ")"
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)
	pageQuery := `SELECT ` + qualifyTxnColumns() + ` FROM transactions t` + where +
		` ORDER BY t.created_at DESC, t.transaction_id DESC LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, pageQuery, args...)
	if err != nil {
		return nil, 0, apperrors.NewStorageError("failed to list transactions for company "+companyID, err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, apperrors.NewStorageError("failed to scan transaction row", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewStorageError("error iterating transaction rows", err)
	}

	domainTxns, err := mapping.ToDomainTransactionSlice(modelTxns)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to map transaction rows", err)
	}
	return domainTxns, total, nil
}

// ListConfirmedByCompany retrieves every CONFIRMED transaction of a company
// with its lines, oldest first. This is the replay feed for the ledger builder.
func (r *PgxTransactionRepository) ListConfirmedByCompany(ctx context.Context, companyID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE company_id = $1 AND status = 'CONFIRMED'
		ORDER BY created_at, transaction_id;`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query confirmed transactions for company "+companyID, err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.NewStorageError("failed to scan confirmed transaction row", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("error iterating confirmed transaction rows", err)
	}

	txns, err := mapping.ToDomainTransactionSlice(modelTxns)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to map confirmed transaction rows", err)
	}

	// Attach lines in a single pass keyed by transaction_id.
	if len(txns) == 0 {
		return txns, nil
	}
	ids := make([]string, len(txns))
	index := make(map[string]int, len(txns))
	for i, t := range txns {
		ids[i] = t.TransactionID
		index[t.TransactionID] = i
	}
	lineQuery := `
		SELECT ` + lineColumns + `
		FROM transaction_lines
		WHERE transaction_id = ANY($1)
		ORDER BY transaction_id, line_number;
	`
	lineRows, err := r.Pool.Query(ctx, lineQuery, ids)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query lines for company "+companyID, err)
	}
	defer lineRows.Close()
	for lineRows.Next() {
		m, err := scanTransactionLine(lineRows)
		if err != nil {
			return nil, apperrors.NewStorageError("failed to scan line row", err)
		}
		if i, ok := index[m.TransactionID]; ok {
			txns[i].Lines = append(txns[i].Lines, mapping.ToDomainTransactionLine(m))
		}
	}
	if err := lineRows.Err(); err != nil {
		return nil, apperrors.NewStorageError("error iterating line rows", err)
	}
	return txns, nil
}

// SumVariantStock replays a variant's stock from the confirmed transaction log.
func (r *PgxTransactionRepository) SumVariantStock(ctx context.Context, variantID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(` + stockDeltaCase + `), 0)
		FROM transaction_lines l
		JOIN transactions t ON t.transaction_id = l.transaction_id
		WHERE l.product_variant_id = $1 AND t.status = 'CONFIRMED';
	`
	var stock decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, variantID).Scan(&stock); err != nil {
		return decimal.Zero, apperrors.NewStorageError("failed to replay stock for variant "+variantID, err)
	}
	return stock, nil
}

// SumCashSessionCash computes the net cash that moved through a session:
// cash-settled sales add, cash-settled sale returns subtract, session
// deposits add, session withdrawals subtract.
func (r *PgxTransactionRepository) SumCashSessionCash(ctx context.Context, cashSessionID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(
			CASE
				WHEN transaction_type = 'SALE' AND payment_method = 'CASH' THEN total
				WHEN transaction_type = 'SALE_RETURN' AND payment_method = 'CASH' THEN -total
				WHEN transaction_type = 'CASH_SESSION_DEPOSIT' THEN total
				WHEN transaction_type = 'CASH_SESSION_WITHDRAWAL' THEN -total
				ELSE 0
			END
		), 0)
		FROM transactions
		WHERE cash_session_id = $1 AND status = 'CONFIRMED';
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, cashSessionID).Scan(&total); err != nil {
		return decimal.Zero, apperrors.NewStorageError("failed to sum cash for session "+cashSessionID, err)
	}
	return total, nil
}

// ListConfirmedLinesByVariant retrieves a variant's confirmed lines with their
// transaction types, oldest first, for cost reconciliation replays.
func (r *PgxTransactionRepository) ListConfirmedLinesByVariant(ctx context.Context, variantID string) ([]domain.TransactionLine, []domain.TransactionType, error) {
	query := `
		SELECT l.line_id, l.transaction_id, l.line_number, l.product_id, l.product_variant_id,
		       l.quantity, l.conversion_factor, l.quantity_in_base, l.unit_symbol,
		       l.unit_price, l.unit_cost, l.discount_amount, l.tax_amount, l.subtotal, l.total, l.created_at,
		       t.transaction_type
		FROM transaction_lines l
		JOIN transactions t ON t.transaction_id = l.transaction_id
		WHERE l.product_variant_id = $1 AND t.status = 'CONFIRMED'
		ORDER BY l.created_at, l.transaction_id, l.line_number;
	`
	rows, err := r.Pool.Query(ctx, query, variantID)
	if err != nil {
		return nil, nil, apperrors.NewStorageError("failed to query lines for variant "+variantID, err)
	}
	defer rows.Close()

	var lines []domain.TransactionLine
	var types []domain.TransactionType
	for rows.Next() {
		var m models.TransactionLine
		var txType string
		err := rows.Scan(
			&m.LineID,
			&m.TransactionID,
			&m.LineNumber,
			&m.ProductID,
			&m.ProductVariantID,
			&m.Quantity,
			&m.ConversionFactor,
			&m.QuantityInBase,
			&m.UnitSymbol,
			&m.UnitPrice,
			&m.UnitCost,
			&m.DiscountAmount,
			&m.TaxAmount,
			&m.Subtotal,
			&m.Total,
			&m.CreatedAt,
			&txType,
		)
		if err != nil {
			return nil, nil, apperrors.NewStorageError("failed to scan line row for variant "+variantID, err)
		}
		lines = append(lines, mapping.ToDomainTransactionLine(m))
		types = append(types, domain.TransactionType(txType))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewStorageError("error iterating line rows for variant "+variantID, err)
	}
	return lines, types, nil
}

// qualifyTxnColumns prefixes every transaction column with the t alias.
func qualifyTxnColumns() string {
	return `t.transaction_id, t.company_id, t.document_number, t.transaction_type, t.status,
	t.subtotal, t.discount_amount, t.tax_amount, t.total, t.amount_paid, t.change_amount,
	t.payment_method, t.branch_id, t.point_of_sale_id, t.cash_session_id,
	t.storage_id, t.target_storage_id, t.customer_id, t.supplier_id, t.shareholder_id,
	t.bank_account_key, t.related_transaction_id, t.external_reference,
	t.user_id, t.metadata, t.created_at, t.created_by, t.last_updated_at, t.last_updated_by`
}

// scanTransaction scans one row laid out as transactionColumns.
func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.CompanyID,
		&m.DocumentNumber,
		&m.Type,
		&m.Status,
		&m.Subtotal,
		&m.DiscountAmount,
		&m.TaxAmount,
		&m.Total,
		&m.AmountPaid,
		&m.ChangeAmount,
		&m.PaymentMethod,
		&m.BranchID,
		&m.PointOfSaleID,
		&m.CashSessionID,
		&m.StorageID,
		&m.TargetStorageID,
		&m.CustomerID,
		&m.SupplierID,
		&m.ShareholderID,
		&m.BankAccountKey,
		&m.RelatedTransactionID,
		&m.ExternalReference,
		&m.UserID,
		&m.Metadata,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// scanTransactionLine scans one row laid out as lineColumns.
func scanTransactionLine(row pgx.Row) (models.TransactionLine, error) {
	var m models.TransactionLine
	err := row.Scan(
		&m.LineID,
		&m.TransactionID,
		&m.LineNumber,
		&m.ProductID,
		&m.ProductVariantID,
		&m.Quantity,
		&m.ConversionFactor,
		&m.QuantityInBase,
		&m.UnitSymbol,
		&m.UnitPrice,
		&m.UnitCost,
		&m.DiscountAmount,
		&m.TaxAmount,
		&m.Subtotal,
		&m.Total,
		&m.CreatedAt,
	)
	return m, err
}
