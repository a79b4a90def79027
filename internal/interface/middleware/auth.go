package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/souravverma/portfolio-backend/internal/domain/repository"
	"github.com/souravverma/portfolio-backend/pkg/helpers"
	"github.com/souravverma/portfolio-backend/pkg/response"
)

// Context keys set by Auth on success.
const (
	CtxAdminIDKey       = "adminID"
	CtxAdminUsernameKey = "adminUsername"
	CtxAdminRoleKey     = "adminRole"
)

// Auth validates the bearer token from the Authorization header and
// re-resolves the admin record from the store, so a deleted admin is locked
// out immediately even with a still-valid token. Token payload alone is never
// trusted for identity.
func Auth(admins repository.AdminRepository, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Error[any](c, http.StatusUnauthorized, "Access denied. No token provided.", nil)
			c.Abort()
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "Invalid token.", nil)
			c.Abort()
			return
		}
		admin, err := admins.GetByID(claims.AdminID)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "Invalid token.", nil)
			c.Abort()
			return
		}

		c.Set(CtxAdminIDKey, admin.ID)
		c.Set(CtxAdminUsernameKey, admin.Username)
		c.Set(CtxAdminRoleKey, string(admin.Role))
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	// tolerate a raw token without the scheme prefix
	return strings.TrimSpace(h)
}
