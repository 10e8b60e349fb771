package middleware

import (
	"net/http"

	"carsline/internal/domain"
	"carsline/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole allows only the listed roles through. Admin always passes.
func RequireRole(roles ...int64) gin.HandlerFunc {
	allowed := make(map[int64]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		roleID := c.GetInt64("role_id")
		if roleID == 0 {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Identity not resolved")
			c.Abort()
			return
		}

		if roleID != domain.RoleAdmin && !allowed[roleID] {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly restricts a route to administrators.
func AdminOnly() gin.HandlerFunc {
	return RequireRole()
}
