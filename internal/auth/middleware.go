package auth

import (
	"strings"

	"auction-house/internal/models"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookie carries the token for browser clients
	SessionCookie = "session"

	userIDKey = "user_id"
)

// IdentityMiddleware resolves the acting user from a bearer token or the
// session cookie. Requests without a valid token stay anonymous; whether that
// is acceptable is decided by the operation itself.
func IdentityMiddleware(issuer *Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			token, _ = c.Cookie(SessionCookie)
		}
		if token == "" {
			c.Next()
			return
		}

		claims, err := issuer.Validate(token)
		if err != nil {
			utils.Debug("ignoring invalid session token", map[string]any{"error": err.Error()})
			c.Next()
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

// CurrentUserID returns the acting user, or models.NoUser and false for anonymous requests
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(userIDKey)
	if !exists {
		return models.NoUser, false
	}
	id, ok := v.(uint)
	if !ok || id == models.NoUser {
		return models.NoUser, false
	}
	return id, true
}

func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
