package api

import (
	"github.com/gin-gonic/gin"

	"lifelessons-backend-go/internal/middleware"
)

// contextUserID returns the authenticated caller's UID set by the auth gate.
func contextUserID(c *gin.Context) (string, bool) {
	raw, exists := c.Get(middleware.ContextUserID)
	if !exists {
		return "", false
	}
	id, ok := raw.(string)
	return id, ok && id != ""
}

// contextUserEmail returns the authenticated caller's email set by the auth gate.
func contextUserEmail(c *gin.Context) (string, bool) {
	raw, exists := c.Get(middleware.ContextUserEmail)
	if !exists {
		return "", false
	}
	email, ok := raw.(string)
	return email, ok && email != ""
}
