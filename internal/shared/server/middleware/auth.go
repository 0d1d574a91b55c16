package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fitcheck-backend/internal/shared/auth"
	"fitcheck-backend/internal/shared/server/respond"
	"fitcheck-backend/internal/shared/telemetry"
)

const adminSubjectKey = "adminSubject"

// AdminAuth guards operator routes with an HS256 bearer token carrying role=admin.
// With an empty secret the routes stay open when allowOpen is set (dev) and are refused otherwise.
func AdminAuth(secret string, allowOpen bool) gin.HandlerFunc {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		if allowOpen {
			telemetry.Warn("admin.auth_disabled", map[string]any{"reason": "ADMIN_JWT_SECRET empty"})
		}
		return func(c *gin.Context) {
			if !allowOpen {
				respond.Error(c, http.StatusServiceUnavailable, "admin_disabled", "admin access is not configured", nil)
				return
			}
			c.Set(adminSubjectKey, "dev")
			c.Next()
		}
	}

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if !strings.HasPrefix(authHeader, "Bearer ") {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
		if token == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		claims, err := auth.VerifyAdminToken(secret, token)
		if err != nil {
			if errors.Is(err, auth.ErrForbidden) {
				respond.Error(c, http.StatusForbidden, "forbidden", "admin role required", nil)
				return
			}
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		c.Set(adminSubjectKey, claims.Subject)
		c.Next()
	}
}

// AdminSubjectFromContext returns the subject stored by AdminAuth.
func AdminSubjectFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(adminSubjectKey)
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}
