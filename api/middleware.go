package api

import (
	"net/http"

	"stayvista/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClaimsKey is the context key carrying the verified token claims.
const ClaimsKey = "user"

// RequireAuth verifies the token cookie and attaches its claims to the
// request context. It checks the signature only, not ownership.
func RequireAuth(tokens *auth.TokenService, cookie CookieOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookie.Name)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequestID tags every response with an X-Request-Id, generating one
// when the client did not send it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}
