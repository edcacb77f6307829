package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"instructhub/internal/pkg/response"
)

// RequireUserType ensures that the authenticated user has the given type.
// Privileged operations are authorized by this claim, never by comparing
// against a literal credential.
func RequireUserType(required string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userType, exists := c.Get("user_type")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User type not found in token")
			c.Abort()
			return
		}

		if userType.(string) != required {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly middleware requires the admin user type
func AdminOnly() gin.HandlerFunc {
	return RequireUserType("admin")
}
