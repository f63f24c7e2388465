package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiddlewareRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(mw...)
	engine.GET("/records/clients", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": c.GetString("request_id")})
	})
	return engine
}

func TestRequestID(t *testing.T) {
	t.Run("mints an id when the caller sends none", func(t *testing.T) {
		router := newMiddlewareRouter(RequestID())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/records/clients", nil))

		require.Equal(t, http.StatusOK, w.Code)
		id := w.Header().Get(RequestIDKey)
		require.NotEmpty(t, id)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		router := newMiddlewareRouter(RequestID())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/records/clients", nil)
		req.Header.Set(RequestIDKey, "caller-id")
		router.ServeHTTP(w, req)

		assert.Equal(t, "caller-id", w.Header().Get(RequestIDKey))
		assert.Contains(t, w.Body.String(), "caller-id")
	})
}

func TestCORSWithConfig(t *testing.T) {
	allowed := CORSConfig{
		AllowOrigins:     []string{"https://crm.local"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type"},
		ExposeHeaders:    []string{RequestIDKey},
		AllowCredentials: true,
	}

	t.Run("answers preflight with 204 and the policy", func(t *testing.T) {
		router := newMiddlewareRouter(CORSWithConfig(allowed))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/records/clients", nil)
		req.Header.Set("Origin", "https://crm.local")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://crm.local", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
		assert.Equal(t, "GET, POST", w.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, RequestIDKey, w.Header().Get("Access-Control-Expose-Headers"))
	})

	t.Run("sets no policy for a foreign origin", func(t *testing.T) {
		router := newMiddlewareRouter(CORSWithConfig(allowed))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/records/clients", nil)
		req.Header.Set("Origin", "https://evil.example")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("empty allowlist stays closed", func(t *testing.T) {
		router := newMiddlewareRouter(CORSWithConfig(DefaultCORSConfig()))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/records/clients", nil)
		req.Header.Set("Origin", "https://crm.local")
		router.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard allows any origin without credentials", func(t *testing.T) {
		cfg := allowed
		cfg.AllowOrigins = []string{"*"}
		router := newMiddlewareRouter(CORSWithConfig(cfg))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/records/clients", nil)
		req.Header.Set("Origin", "https://anywhere.example")
		router.ServeHTTP(w, req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})
}

func TestSecure(t *testing.T) {
	router := newMiddlewareRouter(Secure())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/records/clients", nil))

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "default-src 'self'")
}
