package middleware

import "github.com/gin-gonic/gin"

// userIDKey stores the authenticated user's ID. A custom key type keeps it
// from colliding with other context values.
const userIDKey = contextKey("userID")

// GetUserIDFromContext returns the authenticated user ID, checking both the
// gin context and the request context (register-token auth sets the former,
// JWT auth the latter).
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(userIDKey)); exists {
		userID, ok := v.(string)
		return userID, ok
	}
	if v := c.Request.Context().Value(userIDKey); v != nil {
		userID, ok := v.(string)
		return userID, ok
	}
	return "", false
}
