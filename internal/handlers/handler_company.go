package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/velorapos/velora_backend/internal/core/ports/services"
	"github.com/velorapos/velora_backend/internal/dto"
	"github.com/velorapos/velora_backend/internal/middleware"
)

// companyHandler handles company lifecycle routes. All ledger, inventory and
// register routes are nested under a specific company.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

func newCompanyHandler(cs portssvc.CompanySvcFacade) *companyHandler {
	return &companyHandler{companyService: cs}
}

// registerCompanyRoutes registers company routes and nests every
// company-scoped resource under /companies/:companyID.
func registerCompanyRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newCompanyHandler(services.Company)

	companies := rg.Group("/companies")
	{
		companies.POST("", h.createCompany)
	}

	companySpecific := rg.Group("/companies/:companyID")
	{
		companySpecific.GET("", h.getCompany)

		registerAccountRoutes(companySpecific, services.Account)
		registerVariantRoutes(companySpecific, services.Product, services.Inventory)
		RegisterTransactionRoutes(companySpecific, services.Transaction)
		registerCashSessionRoutes(companySpecific, services.CashSession)
		registerLedgerRoutes(companySpecific, services.Ledger)
		registerReportingRoutes(companySpecific, services.Reporting)
		registerRegisterTokenRoutes(companySpecific, services.RegisterToken)
	}
}

// createCompany godoc
// @Summary Create a new company
// @Description Creates a company and assigns the creator as admin.
// @Tags companies
// @Accept json
// @Produce json
// @Param company body dto.CreateCompanyRequest true "Company details"
// @Success 201 {object} dto.CompanyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies [post]
func (h *companyHandler) createCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to create company")
		return
	}

	logger.Info("Company created", slog.String("company_id", company.CompanyID), slog.String("creator_user_id", creatorUserID))
	c.JSON(http.StatusCreated, dto.ToCompanyResponse(company))
}

// getCompany godoc
// @Summary Get a company by ID
// @Tags companies
// @Produce json
// @Param companyID path string true "Company ID"
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{companyID} [get]
func (h *companyHandler) getCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	company, err := h.companyService.GetCompanyByID(c.Request.Context(), c.Param("companyID"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve company")
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}
