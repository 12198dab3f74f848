package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zvrva/tourbooking/internal/auth"
	"github.com/zvrva/tourbooking/internal/domain"
)

const (
	ctxUserID = "userID"
	ctxRole   = "userRole"
)

// RequireAuth resolves the current user from the bearer token and stores the
// identity in the request context. Handlers read it explicitly; there is no
// ambient user singleton.
func RequireAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := auth.ParseAuth(c.GetHeader("Authorization"), jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, string(claims.Role))
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ctxRole) != string(domain.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

func currentUserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}
