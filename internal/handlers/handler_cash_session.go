package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/velorapos/velora_backend/internal/core/ports/services"
	"github.com/velorapos/velora_backend/internal/dto"
	"github.com/velorapos/velora_backend/internal/middleware"
)

// cashSessionHandler handles register operating windows.
type cashSessionHandler struct {
	sessionService portssvc.CashSessionSvcFacade
}

func newCashSessionHandler(ss portssvc.CashSessionSvcFacade) *cashSessionHandler {
	return &cashSessionHandler{sessionService: ss}
}

// registerCashSessionRoutes registers cash session routes under a company group.
func registerCashSessionRoutes(rg *gin.RouterGroup, sessionService portssvc.CashSessionSvcFacade) {
	h := newCashSessionHandler(sessionService)

	sessions := rg.Group("/cash-sessions")
	{
		sessions.POST("", h.openSession)
		sessions.GET("/:sessionID", h.getSession)
		sessions.POST("/:sessionID/close", h.closeSession)
	}
}

// openSession godoc
// @Summary Open a cash session
// @Description Opens a register operating window. A register can hold at most one open session.
// @Tags cash-sessions
// @Accept json
// @Produce json
// @Param companyID path string true "Company ID"
// @Param session body dto.OpenCashSessionRequest true "Register and opening float"
// @Success 201 {object} domain.CashSession
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Register already has an open session"
// @Security BearerAuth
// @Router /companies/{companyID}/cash-sessions [post]
func (h *cashSessionHandler) openSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.OpenCashSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	session, err := h.sessionService.OpenSession(c.Request.Context(), c.Param("companyID"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to open cash session")
		return
	}

	logger.Info("Cash session opened",
		slog.String("session_id", session.SessionID),
		slog.String("point_of_sale_id", session.PointOfSaleID))
	c.JSON(http.StatusCreated, session)
}

// closeSession godoc
// @Summary Close a cash session
// @Description Closes the session with the counted amount. Expected cash is derived from the session's confirmed movements and the deviation recorded.
// @Tags cash-sessions
// @Accept json
// @Produce json
// @Param companyID path string true "Company ID"
// @Param sessionID path string true "Session ID"
// @Param closure body dto.CloseCashSessionRequest true "Counted amount"
// @Success 200 {object} domain.CashSession
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Session already closed"
// @Security BearerAuth
// @Router /companies/{companyID}/cash-sessions/{sessionID}/close [post]
func (h *cashSessionHandler) closeSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CloseCashSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	session, err := h.sessionService.CloseSession(c.Request.Context(), c.Param("companyID"), c.Param("sessionID"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to close cash session")
		return
	}

	logger.Info("Cash session closed", slog.String("session_id", session.SessionID))
	c.JSON(http.StatusOK, session)
}

// getSession godoc
// @Summary Get a cash session by ID
// @Tags cash-sessions
// @Produce json
// @Param companyID path string true "Company ID"
// @Param sessionID path string true "Session ID"
// @Success 200 {object} domain.CashSession
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{companyID}/cash-sessions/{sessionID} [get]
func (h *cashSessionHandler) getSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	session, err := h.sessionService.GetSessionByID(c.Request.Context(), c.Param("companyID"), c.Param("sessionID"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve cash session")
		return
	}

	c.JSON(http.StatusOK, session)
}
