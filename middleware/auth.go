package middleware

import (
	"net/http"
	"strings"

	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		token := parts[1]
		claims, err := utils.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_role", claims.Role)
		if claims.SalonID != nil {
			c.Set("salon_id", *claims.SalonID)
		}
		c.Next()
	}
}

func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("user_role")
		if !exists || role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// SalonMiddleware requires the user to be a salon_owner or salon_staff
// and have a salon_id in their token.
func SalonMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("user_role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Salon access required"})
			c.Abort()
			return
		}

		roleStr := role.(string)
		if roleStr != "salon_owner" && roleStr != "salon_staff" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Salon access required"})
			c.Abort()
			return
		}

		if _, exists := c.Get("salon_id"); !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "No salon associated with this account"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// SalonOwnerMiddleware requires the user to be specifically a salon_owner.
func SalonOwnerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("user_role")
		if !exists || role != "salon_owner" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Salon owner access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
