package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/velorapos/velora_backend/internal/core/ports/services"
	"github.com/velorapos/velora_backend/internal/dto"
	"github.com/velorapos/velora_backend/internal/middleware"
)

// transactionHandler exposes the append-only transaction log: one write
// endpoint, one cancellation endpoint, and read access to history.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// RegisterTransactionRoutes registers transaction routes under a company group.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:transactionID", h.getTransaction)
		transactions.POST("/:transactionID/cancel", h.cancelTransaction)
	}
}

// createTransaction godoc
// @Summary Record a business event
// @Description Validates and atomically persists one transaction with its ordered lines. Purchases also fold received quantities into each variant's weighted-average cost.
// @Tags transactions
// @Accept json
// @Produce json
// @Param companyID path string true "Company ID"
// @Param transaction body dto.CreateTransactionRequest true "Transaction and its lines"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{companyID}/transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), c.Param("companyID"), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to record transaction")
		return
	}

	logger.Info("Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("document_number", txn.DocumentNumber),
		slog.String("type", string(txn.Type)))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// cancelTransaction godoc
// @Summary Cancel a transaction
// @Description Emits a sign-inverted reversal referencing the original, then marks the original CANCELLED. Only sales and purchases are cancellable; history is never rewritten.
// @Tags transactions
// @Accept json
// @Produce json
// @Param companyID path string true "Company ID"
// @Param transactionID path string true "Transaction ID"
// @Param cancellation body dto.CancelTransactionRequest true "Cancellation reason"
// @Success 201 {object} dto.TransactionResponse "The reversal transaction"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already cancelled"
// @Failure 422 {object} ErrorResponse "Type not cancellable"
// @Security BearerAuth
// @Router /companies/{companyID}/transactions/{transactionID}/cancel [post]
func (h *transactionHandler) cancelTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CancelTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	reversal, err := h.transactionService.CancelTransaction(c.Request.Context(), c.Param("companyID"), c.Param("transactionID"), userID, req.Reason)
	if err != nil {
		respondError(c, logger, err, "Failed to cancel transaction")
		return
	}

	logger.Info("Transaction cancelled",
		slog.String("original_id", c.Param("transactionID")),
		slog.String("reversal_id", reversal.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(reversal))
}

// getTransaction godoc
// @Summary Get a transaction with its lines
// @Tags transactions
// @Produce json
// @Param companyID path string true "Company ID"
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{companyID}/transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), c.Param("companyID"), c.Param("transactionID"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transaction history
// @Description Returns a filtered, paginated page of history plus the total match count, newest first.
// @Tags transactions
// @Produce json
// @Param companyID path string true "Company ID"
// @Param type query string false "Transaction type"
// @Param status query string false "Transaction status"
// @Param branchID query string false "Branch ID"
// @Param cashSessionID query string false "Cash session ID"
// @Param variantID query string false "Variant appearing in the lines"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param cursor query string false "Opaque keyset cursor from a previous page"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{companyID}/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var filters dto.TransactionFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	resp, err := h.transactionService.ListTransactions(c.Request.Context(), c.Param("companyID"), userID, filters)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, resp)
}
