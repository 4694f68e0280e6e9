package middleware

import (
	"roastline/gateway"
	"roastline/session"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware loads the browser session into the request context: it
// guarantees a session id, carries the bearer token to the gateway client,
// and wires the 401 hook so an unauthorized upstream answer clears the auth
// cookies as a side effect of that call.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := session.SID(c)
		ctx := c.Request.Context()
		ctx = gateway.WithToken(ctx, session.Token(c))
		ctx = gateway.WithUnauthorizedHook(ctx, func() {
			session.ClearAuth(c)
		})
		c.Request = c.Request.WithContext(ctx)
		c.Set(session.SIDCookie, sid)
		c.Next()
	}
}
