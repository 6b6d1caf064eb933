package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/zaqqye/linkbio/internal/auth"
	"github.com/zaqqye/linkbio/internal/logger"
)

// AdminKey is the gin context key holding the authenticated username.
const AdminKey = "admin"

// RequireAdmin rejects requests without a valid bearer token for an
// existing admin.
func RequireAdmin(a *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid authorization header"})
			return
		}
		tokenStr := strings.TrimSpace(header[len("Bearer "):])

		claims, err := a.Validate(c.Request.Context(), tokenStr)
		if errors.Is(err, auth.ErrAdminLookup) {
			logger.Error("admin lookup failed",
				zap.String("path", c.FullPath()),
				zap.String("request_id", c.GetString(RequestIDKey)),
				zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify admin"})
			return
		}
		if err != nil {
			msg := "invalid token"
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				msg = "token expired"
			case errors.Is(err, auth.ErrUnknownAdmin):
				msg = "admin not found"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		c.Set(AdminKey, claims.Username)
		c.Next()
	}
}

// CurrentAdmin returns the username set by RequireAdmin.
func CurrentAdmin(c *gin.Context) (string, bool) {
	v, ok := c.Get(AdminKey)
	if !ok {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}
