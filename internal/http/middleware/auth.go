package middleware

import (
	"net/http"
	"strings"

	"taskdeck/internal/service"

	"github.com/gin-gonic/gin"
)

// Auth is the single authorization checkpoint. It pulls the bearer
// token out of the Authorization header, verifies it, and binds the
// resulting user id into the request context. Handlers behind it
// trust "user_id" without re-verifying.
func Auth(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
