package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"reservoria/internal/services"
)

const (
	UserIDKey    = "userID"
	UserRoleKey  = "userRole"
	UserEmailKey = "userEmail"
)

// TokenParser verifies a bearer token.
type TokenParser interface {
	ParseToken(raw, wantType string) (services.Claims, error)
}

// RequireAuth accepts only a valid access token in the Authorization header
// and stores the caller's identity on the context.
func RequireAuth(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			abortAuth(c, http.StatusUnauthorized, "unauthorized", "missing bearer token")
			return
		}
		claims, err := parser.ParseToken(strings.TrimSpace(token), services.TokenAccess)
		if err != nil {
			abortAuth(c, http.StatusUnauthorized, "unauthorized", err.Error())
			return
		}
		c.Set(UserIDKey, claims.UserID)
		c.Set(UserRoleKey, claims.Role)
		c.Set(UserEmailKey, claims.Email)
		c.Next()
	}
}

func abortAuth(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error":      message,
		"code":       code,
		"request_id": GetRequestID(c),
		"message":    message,
	})
}
