package middleware

import (
	"github.com/asegedech/volunteer-api/internal/constants"
	apierrors "github.com/asegedech/volunteer-api/internal/errors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RequireAuth checks if an admin is authenticated via session
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		adminID := session.Get(constants.ContextKeyAdminID)

		if adminID == nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		// Store the resolved identity in context for handlers
		c.Set(constants.ContextKeyAdminID, adminID)
		if email := session.Get(constants.ContextKeyAdminEmail); email != nil {
			c.Set(constants.ContextKeyAdminEmail, email)
		}
		c.Next()
	}
}

// GetAdminID retrieves the current admin ID from context
func GetAdminID(c *gin.Context) (uint64, bool) {
	adminID, exists := c.Get(constants.ContextKeyAdminID)
	if !exists {
		return 0, false
	}

	switch v := adminID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}

// GetAdminEmail retrieves the current admin email from context
func GetAdminEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(constants.ContextKeyAdminEmail)
	if !exists {
		return "", false
	}
	str, ok := email.(string)
	return str, ok
}
