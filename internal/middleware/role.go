package middleware

import (
	"net/http"

	"fitsync/internal/domain"
	"fitsync/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRoles ensures the authenticated user holds one of the given roles.
func RequireRoles(roles ...domain.UserRole) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[string(r)] = true
	}

	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if !allowed[role.(string)] {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// StaffOnly guards the schedule and catalog administration surface.
func StaffOnly() gin.HandlerFunc {
	return RequireRoles(domain.RoleAdmin, domain.RoleReception)
}
