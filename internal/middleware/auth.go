package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/mshariqazeem/Project-7/internal/models/api_error"
	"github.com/mshariqazeem/Project-7/internal/store"
)

// SessionCookie carries the opaque session token issued at login.
const SessionCookie = "photoshare_session"

// Auth gates protected routes: it resolves the session cookie against the
// session store and exposes the authenticated identity to handlers under
// "UserID" and "Session".
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		stores := c.MustGet("stores").(*store.Stores)

		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Error(api_error.Unauthenticated)
			c.Abort()
			return
		}

		session, err := stores.Sessions.Get(c.Request.Context(), token)
		if err != nil {
			c.Error(api_error.Unauthenticated)
			c.Abort()
			return
		}

		c.Set("UserID", session.UserID)
		c.Set("Session", session)
		c.Next()
	}
}
