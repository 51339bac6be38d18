package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"lifelessons-backend-go/internal/models"
)

// RoleResolver looks up the stored role for an email. Satisfied by
// core.UserService.
type RoleResolver interface {
	GetRole(ctx context.Context, email string) (string, error)
}

// AdminMiddleware provides the authorization gate for admin-only routes. It
// must run after AuthMiddleware has populated the principal's email.
type AdminMiddleware struct {
	roles RoleResolver
}

// NewAdminMiddleware creates a new AdminMiddleware instance.
func NewAdminMiddleware(roles RoleResolver) *AdminMiddleware {
	if roles == nil {
		panic("role resolver is not initialized for AdminMiddleware")
	}
	return &AdminMiddleware{roles: roles}
}

// RequireAdmin loads the caller's user record by email and short-circuits with
// 403 unless its role is admin. One store lookup per call, no caching.
func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		rawEmail, exists := c.Get(ContextUserEmail)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
			return
		}
		email, ok := rawEmail.(string)
		if !ok || email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
			return
		}

		role, err := m.roles.GetRole(c.Request.Context(), email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to resolve caller role", Details: err.Error()})
			return
		}
		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "Admin access required"})
			return
		}

		c.Next()
	}
}
