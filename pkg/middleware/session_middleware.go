package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pathwise/pkg/utils"
)

const SessionIDKey = "session_id"

// SessionMiddleware reads an optional bearer session token. Requests without
// one carry no session; a token that fails validation is rejected.
func SessionMiddleware(tokens *utils.SessionTokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header must use the Bearer scheme")
			c.Abort()
			return
		}

		sessionID, err := tokens.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired session token")
			c.Abort()
			return
		}

		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}

// SessionID returns the session bound to the request, or uuid.Nil.
func SessionID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(SessionIDKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
