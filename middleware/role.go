package middleware

import (
	"net/http"

	"ouiimi/utils"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group to callers whose token carries the given
// role. Must run after AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != role {
			utils.JSONError(c, http.StatusForbidden, "Forbidden", "insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}
