package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Pritish2005/task-management-app/internal/dto"
)

const contextKeyUserID = "user_id"

// Error messages match the original API so existing clients keep working.
const (
	msgNoToken      = "No token, authorization denied"
	msgTokenExpired = "Token has expired"
	msgTokenInvalid = "Token is not valid"
)

// UserIDFromContext returns the user id set by RequireAuth. 0 if not set.
func UserIDFromContext(c *gin.Context) int64 {
	v, ok := c.Get(contextKeyUserID)
	if !ok {
		return 0
	}
	id, ok := v.(int64)
	if !ok {
		return 0
	}
	return id
}

// RequireAuth returns a middleware that verifies the Authorization header
// and sets the authenticated user id in context. The header must hold a
// scheme and a token separated by whitespace ("Bearer <token>"); a missing
// header or missing second segment, a bad signature, and an expired token
// all respond 401.
func RequireAuth(tokens *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Msg: msgNoToken})
			return
		}
		parts := strings.Fields(header)
		if len(parts) < 2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Msg: msgNoToken})
			return
		}
		userID, err := tokens.Verify(parts[1])
		if err != nil {
			msg := msgTokenInvalid
			if errors.Is(err, ErrTokenExpired) {
				msg = msgTokenExpired
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Msg: msg})
			return
		}
		c.Set(contextKeyUserID, userID)
		c.Next()
	}
}
