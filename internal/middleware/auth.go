package middleware

import (
	"strings"

	"eggslist_backend/internal/auth"
	"eggslist_backend/internal/logger"
	"eggslist_backend/pkg/apperrors"
	"eggslist_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// Auth parses the bearer token when present and stores the user id on
// the context. Requests without a token pass through anonymously; use
// RequireAuth on routes that need a signed-in user.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Malformed Authorization header"))
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set(string(contextkeys.UserIDContextKey), claims.UserID)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireAuth rejects anonymous requests. It assumes Auth already ran.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserID(c) == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user id, or "" for guests.
func UserID(c *gin.Context) string {
	return c.GetString(string(contextkeys.UserIDContextKey))
}
