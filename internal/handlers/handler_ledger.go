package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/velorapos/velora_backend/internal/core/ports/services"
	"github.com/velorapos/velora_backend/internal/middleware"
)

// ledgerHandler exposes the read-side replay of the transaction log.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers ledger routes under a company group.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	rg.GET("/ledger", h.getLedger)
}

// getLedger godoc
// @Summary Build the company ledger
// @Description Replays every confirmed transaction in chronological order into per-account balances, an ordered posting feed, and the account tree with rolled-up balances.
// @Tags ledger
// @Produce json
// @Param companyID path string true "Company ID"
// @Success 200 {object} domain.Ledger
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "A confirmed transaction has no posting rule"
// @Security BearerAuth
// @Router /companies/{companyID}/ledger [get]
func (h *ledgerHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	ledger, err := h.ledgerService.BuildLedger(c.Request.Context(), c.Param("companyID"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to build ledger")
		return
	}

	c.JSON(http.StatusOK, ledger)
}
