package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/velorapos/velora_backend/internal/core/ports/services"
	"github.com/velorapos/velora_backend/internal/dto"
	"github.com/velorapos/velora_backend/internal/middleware"
)

// variantHandler handles product variant routes, including the inventory
// figures derived from the transaction log.
type variantHandler struct {
	productService   portssvc.ProductSvcFacade
	inventoryService portssvc.InventorySvcFacade
}

func newVariantHandler(ps portssvc.ProductSvcFacade, is portssvc.InventorySvcFacade) *variantHandler {
	return &variantHandler{
		productService:   ps,
		inventoryService: is,
	}
}

// registerVariantRoutes registers variant and inventory routes under a
// company group.
func registerVariantRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade, inventoryService portssvc.InventorySvcFacade) {
	h := newVariantHandler(productService, inventoryService)

	variants := rg.Group("/variants")
	{
		variants.POST("", h.createVariant)
		variants.GET("", h.listVariants)
		variants.GET("/:variantID", h.getVariant)
		variants.GET("/:variantID/stock", h.getStock)
		variants.GET("/:variantID/pmp", h.getPMP)
		variants.POST("/:variantID/pmp", h.updatePMP)
		variants.POST("/:variantID/reconcile", h.reconcileVariant)
	}
}

// createVariant godoc
// @Summary Create a product variant
// @Tags variants
// @Accept json
// @Produce json
// @Param companyID path string true "Company ID"
// @Param variant body dto.CreateVariantRequest true "Variant details"
// @Success 201 {object} dto.VariantResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{companyID}/variants [post]
func (h *variantHandler) createVariant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	variant, err := h.productService.CreateVariant(c.Request.Context(), c.Param("companyID"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create variant")
		return
	}

	c.JSON(http.StatusCreated, dto.ToVariantResponse(variant))
}

// getVariant godoc
// @Summary Get a variant by ID
// @Tags variants
// @Produce json
// @Param companyID path string true "Company ID"
// @Param variantID path string true "Variant ID"
// @Success 200 {object} dto.VariantResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{companyID}/variants/{variantID} [get]
func (h *variantHandler) getVariant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	variant, err := h.productService.GetVariantByID(c.Request.Context(), c.Param("companyID"), c.Param("variantID"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve variant")
		return
	}

	c.JSON(http.StatusOK, dto.ToVariantResponse(variant))
}

// listVariants godoc
// @Summary List active variants
// @Tags variants
// @Produce json
// @Param companyID path string true "Company ID"
// @Success 200 {array} dto.VariantResponse
// @Security BearerAuth
// @Router /companies/{companyID}/variants [get]
func (h *variantHandler) listVariants(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	variants, err := h.productService.ListVariants(c.Request.Context(), c.Param("companyID"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list variants")
		return
	}

	responses := make([]dto.VariantResponse, len(variants))
	for i := range variants {
		responses[i] = dto.ToVariantResponse(&variants[i])
	}
	c.JSON(http.StatusOK, responses)
}

// getStock godoc
// @Summary Get current stock for a variant
// @Description Replays confirmed stock-moving lines to derive on-hand quantity in base units.
// @Tags inventory
// @Produce json
// @Param companyID path string true "Company ID"
// @Param variantID path string true "Variant ID"
// @Success 200 {object} dto.VariantStockResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{companyID}/variants/{variantID}/stock [get]
func (h *variantHandler) getStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	variantID := c.Param("variantID")

	stock, err := h.inventoryService.GetVariantStock(c.Request.Context(), variantID)
	if err != nil {
		respondError(c, logger, err, "Failed to compute stock")
		return
	}

	c.JSON(http.StatusOK, dto.VariantStockResponse{VariantID: variantID, Stock: stock})
}

// getPMP godoc
// @Summary Get the weighted-average unit cost for a variant
// @Tags inventory
// @Produce json
// @Param companyID path string true "Company ID"
// @Param variantID path string true "Variant ID"
// @Success 200 {object} dto.VariantPMPResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{companyID}/variants/{variantID}/pmp [get]
func (h *variantHandler) getPMP(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	variantID := c.Param("variantID")

	pmp, err := h.inventoryService.GetVariantPMP(c.Request.Context(), variantID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve unit cost")
		return
	}

	c.JSON(http.StatusOK, dto.VariantPMPResponse{VariantID: variantID, PMP: pmp})
}

// updatePMP godoc
// @Summary Fold an inbound movement into the weighted-average cost
// @Tags inventory
// @Accept json
// @Produce json
// @Param companyID path string true "Company ID"
// @Param variantID path string true "Variant ID"
// @Param movement body dto.UpdatePMPRequest true "Inbound quantity and unit cost"
// @Success 200 {object} dto.VariantPMPResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{companyID}/variants/{variantID}/pmp [post]
func (h *variantHandler) updatePMP(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	variantID := c.Param("variantID")

	var req dto.UpdatePMPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	pmp, err := h.inventoryService.UpdatePMP(c.Request.Context(), variantID, req.Quantity, req.UnitCost, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update unit cost")
		return
	}

	c.JSON(http.StatusOK, dto.VariantPMPResponse{VariantID: variantID, PMP: pmp})
}

// reconcileVariant godoc
// @Summary Recompute stock and average cost from scratch
// @Description Replays the variant's full confirmed history and reports drift against the cached average cost.
// @Tags inventory
// @Produce json
// @Param companyID path string true "Company ID"
// @Param variantID path string true "Variant ID"
// @Success 200 {object} domain.VariantReconciliation
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{companyID}/variants/{variantID}/reconcile [post]
func (h *variantHandler) reconcileVariant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	result, err := h.inventoryService.ReconcileVariant(c.Request.Context(), c.Param("variantID"))
	if err != nil {
		respondError(c, logger, err, "Failed to reconcile variant")
		return
	}

	c.JSON(http.StatusOK, result)
}
