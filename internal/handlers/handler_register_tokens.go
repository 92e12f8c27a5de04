package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/velorapos/velora_backend/internal/core/ports/services"
	"github.com/velorapos/velora_backend/internal/dto"
	"github.com/velorapos/velora_backend/internal/middleware"
)

// registerTokenHandler manages long-lived POS terminal tokens.
type registerTokenHandler struct {
	tokenService portssvc.RegisterTokenSvc
}

func newRegisterTokenHandler(ts portssvc.RegisterTokenSvc) *registerTokenHandler {
	return &registerTokenHandler{tokenService: ts}
}

// registerRegisterTokenRoutes registers terminal token routes under a
// company group.
func registerRegisterTokenRoutes(rg *gin.RouterGroup, tokenService portssvc.RegisterTokenSvc) {
	h := newRegisterTokenHandler(tokenService)

	tokens := rg.Group("/register-tokens")
	{
		tokens.POST("", h.createToken)
		tokens.GET("", h.listTokens)
		tokens.DELETE("/:tokenID", h.revokeToken)
	}
}

// createToken godoc
// @Summary Create a register token
// @Description Issues a long-lived token for a POS terminal. The raw token is returned exactly once; only its hash is stored.
// @Tags register-tokens
// @Accept json
// @Produce json
// @Param companyID path string true "Company ID"
// @Param token body dto.CreateRegisterTokenRequest true "Token name and optional expiry"
// @Success 201 {object} dto.RegisterTokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{companyID}/register-tokens [post]
func (h *registerTokenHandler) createToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateRegisterTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	token, err := h.tokenService.CreateToken(c.Request.Context(), userID, c.Param("companyID"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create register token")
		return
	}

	logger.Info("Register token created", slog.String("token_id", token.TokenID), slog.String("name", token.Name))
	c.JSON(http.StatusCreated, token)
}

// listTokens godoc
// @Summary List the caller's register tokens
// @Description Lists token metadata. Raw token values are never returned after creation.
// @Tags register-tokens
// @Produce json
// @Param companyID path string true "Company ID"
// @Success 200 {array} domain.RegisterToken
// @Security BearerAuth
// @Router /companies/{companyID}/register-tokens [get]
func (h *registerTokenHandler) listTokens(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	tokens, err := h.tokenService.ListTokens(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list register tokens")
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// revokeToken godoc
// @Summary Revoke a register token
// @Tags register-tokens
// @Param companyID path string true "Company ID"
// @Param tokenID path string true "Token ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{companyID}/register-tokens/{tokenID} [delete]
func (h *registerTokenHandler) revokeToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.tokenService.RevokeToken(c.Request.Context(), userID, c.Param("tokenID")); err != nil {
		respondError(c, logger, err, "Failed to revoke register token")
		return
	}

	c.Status(http.StatusNoContent)
}
