package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinicsuite-server/internal/config"
	"clinicsuite-server/internal/models"
	"clinicsuite-server/internal/utils"
)

// SessionCookieName is the HTTP-only cookie carrying the signed session token.
const SessionCookieName = "clinic_session"

// RequireSession creates a middleware that gates page access on an
// authenticated session. The session token travels in an HTTP-only cookie;
// any missing or invalid token redirects to the login page instead of
// rendering content.
func RequireSession(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookieName)
		if err != nil || tokenString == "" {
			c.Redirect(http.StatusFound, utils.RoutePath("login"))
			c.Abort()
			return
		}

		claims, err := utils.ValidateSessionToken(tokenString, cfg.SessionSecret)
		if err != nil {
			c.Redirect(http.StatusFound, utils.RoutePath("login"))
			c.Abort()
			return
		}

		// Set user information in context for downstream handlers
		c.Set("userID", claims.UserID)
		c.Set("userRole", claims.Role)

		c.Next()
	}
}

// Helper function to get user ID from context
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	idStr, ok := userID.(string)
	return idStr, ok
}

// Helper function to get user role from context
func GetUserRoleFromContext(c *gin.Context) (models.Role, bool) {
	userRole, exists := c.Get("userRole")
	if !exists {
		return "", false
	}
	role, ok := userRole.(models.Role)
	return role, ok
}
