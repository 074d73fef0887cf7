package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbrandt27/football-pick-em-sub003/internal/auth/token"
	"github.com/tbrandt27/football-pick-em-sub003/internal/httpapi"
)

// Context keys populated by the Auth middleware.
const (
	ContextUserID  = "userID"
	ContextIsAdmin = "isAdmin"
)

// Auth returns a middleware that validates the bearer token and stores the
// caller's identity in the gin context.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			unauthorized(c, "authorization header is required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(c, "authorization header must be a bearer token")
			return
		}

		claims, err := token.Parse(jwtSecret, parts[1])
		if err != nil {
			unauthorized(c, "invalid or expired token")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextIsAdmin, claims.IsAdmin)
		c.Next()
	}
}

// AdminOnly returns a middleware that rejects non-admin callers.
// Must run after Auth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ContextIsAdmin) {
			httpapi.Forbidden(c, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CallerID returns the authenticated user id from the gin context.
func CallerID(c *gin.Context) uint {
	return c.GetUint(ContextUserID)
}

// CallerIsAdmin returns the authenticated caller's admin flag.
func CallerIsAdmin(c *gin.Context) bool {
	return c.GetBool(ContextIsAdmin)
}

func unauthorized(c *gin.Context, message string) {
	httpapi.Error(c, "UNAUTHORIZED", message, http.StatusUnauthorized)
	c.Abort()
}
