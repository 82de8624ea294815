package middleware

import (
	"net/http"
	"strings"

	"kasir-pos/internal/auth"
	"kasir-pos/internal/respond"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware checks if the request carries a valid bearer token and
// stores the caller's identity in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			respond.Fail(c, http.StatusUnauthorized, respond.KindAuth, "Authorization header is required")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			respond.Fail(c, http.StatusUnauthorized, respond.KindAuth, "Authorization header must start with Bearer")
			c.Abort()
			return
		}

		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			respond.Fail(c, http.StatusUnauthorized, respond.KindAuth, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RequireRole guards a route group for the given roles.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			respond.Fail(c, http.StatusForbidden, respond.KindAuth, "You do not have permission to access this resource")
			c.Abort()
			return
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}
		respond.Fail(c, http.StatusForbidden, respond.KindAuth, "You do not have permission to access this resource")
		c.Abort()
	}
}
