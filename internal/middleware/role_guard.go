package middleware

import (
	"log"
	"net/http"

	"github.com/battlebox/contest-backend/internal/models"
	"github.com/battlebox/contest-backend/internal/repositories"
	"github.com/gin-gonic/gin"
)

// RequireRole creates a gin middleware that gates a route group on a stored
// role. Role lives in the user directory rather than the credential, so every
// decision costs one lookup; acceptable at this request volume.
func RequireRole(users repositories.UserRepository, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := EmailFromContext(c)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		user, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			log.Printf("[WARN] RequireRole: directory lookup failed for %s: %v", email, err)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: unknown user"})
			return
		}

		if user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Access denied: " + role + " role required",
				"role":  user.Role,
			})
			return
		}

		c.Next()
	}
}

// RequireAdmin gates a route on the admin role
func RequireAdmin(users repositories.UserRepository) gin.HandlerFunc {
	return RequireRole(users, models.RoleAdmin)
}

// RequireCreator gates a route on the creator role
func RequireCreator(users repositories.UserRepository) gin.HandlerFunc {
	return RequireRole(users, models.RoleCreator)
}
