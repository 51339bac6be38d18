package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"lifelessons-backend-go/internal/models"
)

type roleResolverFunc func(ctx context.Context, email string) (string, error)

func (f roleResolverFunc) GetRole(ctx context.Context, email string) (string, error) {
	return f(ctx, email)
}

// adminTestRouter wires RequireAdmin behind a stub that injects the given
// email the way VerifyToken would.
func adminTestRouter(email string, resolver RoleResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin/stats",
		func(c *gin.Context) {
			if email != "" {
				c.Set(ContextUserEmail, email)
			}
			c.Next()
		},
		NewAdminMiddleware(resolver).RequireAdmin(),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		},
	)
	return router
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	resolver := roleResolverFunc(func(_ context.Context, email string) (string, error) {
		assert.Equal(t, "admin@example.com", email)
		return models.RoleAdmin, nil
	})
	router := adminTestRouter("admin@example.com", resolver)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdminRejectsNonAdmin(t *testing.T) {
	resolver := roleResolverFunc(func(_ context.Context, _ string) (string, error) {
		return models.RoleUser, nil
	})
	router := adminTestRouter("user@example.com", resolver)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Admin access required")
}

func TestRequireAdminWithoutPrincipalIs401(t *testing.T) {
	resolver := roleResolverFunc(func(_ context.Context, _ string) (string, error) {
		t.Fatal("role lookup must not run without a principal")
		return "", nil
	})
	router := adminTestRouter("", resolver)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdminLookupFailureIs500(t *testing.T) {
	resolver := roleResolverFunc(func(_ context.Context, _ string) (string, error) {
		return "", errors.New("store unavailable")
	})
	router := adminTestRouter("admin@example.com", resolver)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
