package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// The header-parsing paths reject the request before the Firebase client is
// ever touched, so a zero-value middleware is enough here.
func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	m := &AuthMiddleware{}
	router.GET("/lessons", m.VerifyToken(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestVerifyTokenMissingHeader(t *testing.T) {
	router := authTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/lessons", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authorization header is required")
}

func TestVerifyTokenMalformedHeader(t *testing.T) {
	router := authTestRouter()

	for _, header := range []string{"token-without-scheme", "Basic abc123", "Bearer a b"} {
		req := httptest.NewRequest(http.MethodGet, "/lessons", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}
