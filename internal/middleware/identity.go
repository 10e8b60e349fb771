package middleware

import (
	"context"
	"net/http"
	"strconv"

	"carsline/internal/domain"
	"carsline/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserLoader resolves request identities against the user store.
type UserLoader interface {
	GetActiveByID(ctx context.Context, id int64) (*domain.User, error)
}

// Identity resolves the X-User-Id header to an active user and stores
// user_id and role_id in the request context. Requests without a valid
// identity are rejected before reaching any handler.
func Identity(users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("X-User-Id")
		if header == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing X-User-Id header")
			c.Abort()
			return
		}

		userID, err := strconv.ParseInt(header, 10, 64)
		if err != nil || userID <= 0 {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid X-User-Id header")
			c.Abort()
			return
		}

		user, err := users.GetActiveByID(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unknown or inactive user")
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("role_id", user.RoleID)
		c.Next()
	}
}
