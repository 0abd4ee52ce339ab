package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inventario/internal/config"
	"inventario/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{Env: "test", RateLimit: 1000, RateLimitWindow: 60}
	// nil DB/Redis: these tests never reach a repository.
	return router.New(cfg, nil, nil)
}

func routeSet(r *gin.Engine) map[string]bool {
	set := make(map[string]bool)
	for _, ri := range r.Routes() {
		set[ri.Method+" "+ri.Path] = true
	}
	return set
}

// Partial updates are PATCH across every entity, matching the published
// contract. PUT must not be registered.
func TestRutasDeActualizacionSonPatch(t *testing.T) {
	routes := routeSet(newEngine(t))

	for _, path := range []string{
		"/api/categorias/:id",
		"/api/proveedores/:id",
		"/api/clientes/:id",
		"/api/productos/:id",
		"/api/compras/:id",
		"/api/ventas/:id",
	} {
		assert.True(t, routes["PATCH "+path], "falta PATCH %s", path)
		assert.False(t, routes["PUT "+path], "PUT %s no debería existir", path)
	}
}

func TestRutaMovimientosDeInventario(t *testing.T) {
	routes := routeSet(newEngine(t))
	assert.True(t, routes["GET /api/inventario/movimientos"])
}

func TestPatchCategoriaLlegaAlHandler(t *testing.T) {
	r := newEngine(t)

	// Malformed body: the request must reach the handler (400 from binding),
	// never fall through to gin's 404.
	req := httptest.NewRequest(http.MethodPatch, "/api/categorias/1", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "JSON inválido")
}
