package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/velorapos/velora_backend/internal/core/ports/services"
	"github.com/velorapos/velora_backend/internal/middleware"
)

// reportingHandler exposes financial statements built on the ledger replay.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers reporting routes under a company group.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/income-statement", h.getIncomeStatement)
	}
}

// getBalanceSheet godoc
// @Summary Balance sheet
// @Description Assets, liabilities and equity with presentation-normalized signs.
// @Tags reports
// @Produce json
// @Param companyID path string true "Company ID"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{companyID}/reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), c.Param("companyID"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to build balance sheet")
		return
	}

	c.JSON(http.StatusOK, report)
}

// getIncomeStatement godoc
// @Summary Income statement
// @Description Income and expenses with presentation-normalized signs and the resulting net figure.
// @Tags reports
// @Produce json
// @Param companyID path string true "Company ID"
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{companyID}/reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report, err := h.reportingService.IncomeStatement(c.Request.Context(), c.Param("companyID"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to build income statement")
		return
	}

	c.JSON(http.StatusOK, report)
}
