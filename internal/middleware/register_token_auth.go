package middleware

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/velorapos/velora_backend/internal/core/ports/services"
)

// RegisterTokenAuth authenticates POS terminals by their register token.
// When no token is present or validation fails the request falls through to
// JWT auth instead of being rejected here.
func RegisterTokenAuth(tokenSvc portssvc.RegisterTokenSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isPublicRoute(c.Request.URL.Path) {
			c.Next()
			return
		}

		rawToken := c.GetHeader("x-register-token")
		if rawToken == "" {
			c.Next()
			return
		}

		userID, err := tokenSvc.ValidateToken(c.Request.Context(), rawToken)
		if err != nil {
			c.Next()
			return
		}

		c.Set(string(userIDKey), userID)
		c.Set("authMethod", "register_token")
		c.Next()
	}
}

// isPublicRoute checks if the given path is a public route that doesn't require authentication
func isPublicRoute(path string) bool {
	publicRoutes := []string{
		"/api/v1/auth/login",
		"/api/v1/auth/register",
		"/api/v1/health",
	}

	for _, route := range publicRoutes {
		if path == route {
			return true
		}
	}

	return false
}
