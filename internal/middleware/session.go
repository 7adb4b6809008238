package middleware

import (
	"net/http"
	"time"

	"eggslist_backend/internal/logger"
	"eggslist_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AnonymousSession makes sure every visitor carries a session cookie so
// ephemeral state (the chosen location) survives between requests
// before sign-up. The cookie is an opaque random key, nothing derivable
// from it.
func AnonymousSession(cookieName string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookieName, sessionID, int(ttl.Seconds()), "/", "", false, true)
		}

		c.Set(string(contextkeys.SessionIDContextKey), sessionID)

		ctx := logger.WithSessionID(c.Request.Context(), sessionID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// SessionID returns the visitor's session key.
func SessionID(c *gin.Context) string {
	return c.GetString(string(contextkeys.SessionIDContextKey))
}
