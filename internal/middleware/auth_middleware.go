package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/battlebox/contest-backend/pkg/token"
	"github.com/gin-gonic/gin"
)

// ContextEmailKey is the gin context key carrying the verified principal email
const ContextEmailKey = "userEmail"

// JWTAuthMiddleware creates a gin middleware that verifies the bearer
// credential and attaches the verified email to the request context.
func JWTAuthMiddleware(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const BearerSchema = "Bearer "
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Println("[WARN] JWTAuthMiddleware: Authorization header is missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		if !strings.HasPrefix(authHeader, BearerSchema) {
			log.Println("[WARN] JWTAuthMiddleware: Authorization header format is invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must start with Bearer "})
			return
		}

		email, err := tokens.Verify(authHeader[len(BearerSchema):])
		if err != nil {
			log.Printf("[WARN] JWTAuthMiddleware: Token verification failed: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ContextEmailKey, email)
		c.Next()
	}
}

// EmailFromContext returns the verified email set by JWTAuthMiddleware
func EmailFromContext(c *gin.Context) string {
	return c.GetString(ContextEmailKey)
}
