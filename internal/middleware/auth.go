package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"door-booking-api/internal/auth"
	"door-booking-api/internal/model"
	"door-booking-api/internal/session"
)

const (
	UserIDKey    = "uid"
	RoleKey      = "role"
	SessionIDKey = "sid"
)

// Auth accepts Authorization: Bearer <jwt> and requires the token's
// session id to still be live in the session store. A 401 here means
// no usable identity; role checks answer 403 separately.
func Auth(secret string, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if raw == "" || raw == c.GetHeader("Authorization") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		claims, err := auth.ParseToken(raw, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		// logged-out tokens are still well-formed; the store says no
		s, err := sessions.Get(c.Request.Context(), claims.SessionID)
		if err != nil || s.UserID != claims.UserID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(RoleKey, model.Role(claims.Role))
		c.Set(SessionIDKey, claims.SessionID)
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CallerRole(c) != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin privileges required"})
			return
		}
		c.Next()
	}
}

func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CallerRole(c).Privileged() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Manager privileges required"})
			return
		}
		c.Next()
	}
}

func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

func CallerRole(c *gin.Context) model.Role {
	r, _ := c.Get(RoleKey)
	role, _ := r.(model.Role)
	return role
}

func SessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
