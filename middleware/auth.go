package middleware

import (
	"net/http"

	"roastline/session"

	"github.com/gin-gonic/gin"
)

// RequireAuth guards routes that need a signed-in customer. Presence of the
// token is the only check: validity is the store API's call, and its 401
// answer clears the session through the gateway hook.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if session.Token(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Next()
	}
}
