package middleware

import (
	"github.com/gin-gonic/gin"

	"iori_nav/internal/auth"
	"iori_nav/internal/httpx"
)

// IsAdmin reports whether the request carries a valid admin session.
// The home page uses this to pick the private/public cache variant, so it
// must never fail the request; an invalid token just means anonymous.
func IsAdmin(c *gin.Context) bool {
	token := auth.TokenFromRequest(c.Request)
	if token == "" {
		return false
	}
	claims, err := auth.ParseToken(token)
	if err != nil {
		return false
	}

	c.Set("uid", claims.UID)
	c.Set("username", claims.Username)
	c.Set("role", claims.Role)
	return true
}

// AdminRequired guards the admin API surface. The token is accepted from
// either the Authorization header or the session cookie; the message is
// the fixed "Unauthorized" the admin frontend keys on.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			httpx.FailErr(c, httpx.ErrUnauthorized("Unauthorized"))
			c.Abort()
			return
		}
		c.Next()
	}
}
