package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/infrastructure/session"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/shared/response"
	"github.com/chrisakin/Katherine-Akintade-Website/pkg/logger"
)

// SessionReader is the lookup slice of the session store the guard
// needs. Satisfied by *session.Store.
type SessionReader interface {
	Get(ctx context.Context, token string) (*session.Session, error)
}

// SessionAuth guards admin routes. The session store is consulted on every
// request, so a token invalidated by logout or expiry is rejected
// immediately; nothing is cached between requests.
func SessionAuth(store SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}
		token := parts[1]

		sess, err := store.Get(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, session.ErrNotFound) {
				logger.Error("session lookup failed", err)
			}
			response.Unauthorized(c, "invalid or expired session")
			c.Abort()
			return
		}

		c.Set("userID", sess.UserID)
		c.Set("sessionToken", token)
		c.Next()
	}
}
