package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"moodtunes/internal/pkg/jwtutil"
	"moodtunes/internal/transport/http/response"
)

const ContextUIDKey = "uid"

// AuthJWT requires a valid session token and stores the uid in the request
// context.
func AuthJWT(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := uidFromHeader(c, secret)
		if !ok {
			response.Fail(c, http.StatusUnauthorized, "missing or invalid session token")
			c.Abort()
			return
		}
		c.Set(ContextUIDKey, uid)
		c.Next()
	}
}

// OptionalAuthJWT attaches the uid when a valid token is present but never
// rejects; public endpoints use it for attribution only.
func OptionalAuthJWT(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if uid, ok := uidFromHeader(c, secret); ok {
			c.Set(ContextUIDKey, uid)
		}
		c.Next()
	}
}

func uidFromHeader(c *gin.Context, secret string) (string, bool) {
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	const prefix = "Bearer "
	if !strings.HasPrefix(authHeader, prefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, prefix))
	claims, err := jwtutil.ParseToken(secret, token)
	if err != nil || claims.UID == "" {
		return "", false
	}
	return claims.UID, true
}
