package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeFormRoutes registers the kind of surface a form handler owns
type fakeFormRoutes struct {
	registered bool
}

func (f *fakeFormRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	f.registered = true
	forms := rg.Group("/forms")
	forms.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"schemas": []string{"commission"}})
	})
	forms.POST("/:schema/validate", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"schema": c.Param("schema")})
	})
}

type fakeRecordRoutes struct{}

func (f *fakeRecordRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/records/clients", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRouterSetup(t *testing.T) {
	t.Run("mounts registrars under the default version", func(t *testing.T) {
		engine := gin.New()
		forms := &fakeFormRoutes{}
		NewRouter(engine).Register(forms).Setup()

		require.True(t, forms.registered)
		assert.Equal(t, http.StatusOK, get(engine, "/api/v1/forms").Code)
		assert.Equal(t, http.StatusNotFound, get(engine, "/forms").Code)
	})

	t.Run("honors a custom version prefix", func(t *testing.T) {
		engine := gin.New()
		NewRouter(engine, WithAPIVersion("v2")).Register(&fakeFormRoutes{}).Setup()

		assert.Equal(t, http.StatusOK, get(engine, "/api/v2/forms").Code)
		assert.Equal(t, http.StatusNotFound, get(engine, "/api/v1/forms").Code)
	})

	t.Run("chains multiple registrars", func(t *testing.T) {
		engine := gin.New()
		NewRouter(engine).
			Register(&fakeFormRoutes{}).
			Register(&fakeRecordRoutes{}).
			Setup()

		assert.Equal(t, http.StatusOK, get(engine, "/api/v1/forms").Code)
		assert.Equal(t, http.StatusOK, get(engine, "/api/v1/records/clients").Code)
	})

	t.Run("routes see path parameters", func(t *testing.T) {
		engine := gin.New()
		NewRouter(engine).Register(&fakeFormRoutes{}).Setup()

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/forms/commission/validate", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "commission")
	})
}
