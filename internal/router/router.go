package router

import (
	"time"

	"inventario/internal/config"
	"inventario/internal/handler"
	"inventario/internal/middleware"
	"inventario/internal/repository"
	"inventario/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimit, time.Duration(cfg.RateLimitWindow)*time.Second))

	// ── Repositories ─────────────────────────────────────────────────────────
	categoriaRepo := repository.NewCategoriaRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	compraRepo := repository.NewCompraRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	movimientoRepo := repository.NewMovimientoStockRepository(db)
	historialRepo := repository.NewHistorialPrecioRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	cache := service.NewReporteCache(rdb)
	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	productoSvc := service.NewProductoService(productoRepo, categoriaRepo, historialRepo, movimientoRepo, cache)
	compraSvc := service.NewCompraService(compraRepo, productoRepo, proveedorRepo)
	ventaSvc := service.NewVentaService(ventaRepo, productoRepo, clienteRepo, movimientoRepo, cache)

	// ── Handlers ─────────────────────────────────────────────────────────────
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	comprasH := handler.NewComprasHandler(compraSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/", handler.Root())
	r.GET("/health", handler.Health(db, rdb))

	api := r.Group("/api")
	{
		categorias := api.Group("/categorias")
		{
			categorias.POST("", categoriasH.Crear)
			categorias.GET("", categoriasH.Listar)
			categorias.GET("/:id", categoriasH.Obtener)
			categorias.PATCH("/:id", categoriasH.Actualizar)
			categorias.DELETE("/:id", categoriasH.Eliminar)
		}

		proveedores := api.Group("/proveedores")
		{
			proveedores.POST("", proveedoresH.Crear)
			proveedores.GET("", proveedoresH.Listar)
			proveedores.GET("/:id", proveedoresH.Obtener)
			proveedores.PATCH("/:id", proveedoresH.Actualizar)
			proveedores.DELETE("/:id", proveedoresH.Eliminar)
		}

		clientes := api.Group("/clientes")
		{
			clientes.POST("", clientesH.Crear)
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.Obtener)
			clientes.PATCH("/:id", clientesH.Actualizar)
			clientes.DELETE("/:id", clientesH.Eliminar)
		}

		productos := api.Group("/productos")
		{
			productos.POST("", productosH.Crear)
			productos.GET("", productosH.Listar)
			// Static segments must be registered alongside /:id; gin resolves
			// them without conflict.
			productos.GET("/stock-bajo", productosH.StockBajo)
			productos.GET("/:id", productosH.Obtener)
			productos.GET("/:id/historial-precios", productosH.HistorialPrecios)
			productos.PATCH("/:id", productosH.Actualizar)
			productos.DELETE("/:id", productosH.Eliminar)
		}

		compras := api.Group("/compras")
		{
			compras.POST("", comprasH.Crear)
			compras.GET("", comprasH.Listar)
			compras.GET("/:id", comprasH.Obtener)
			compras.PATCH("/:id", comprasH.Actualizar)
			compras.DELETE("/:id", comprasH.Cancelar)
		}

		// Ventas: no cancel/delete route — discounted stock is never restored
		// automatically, so a sale is permanent once created.
		ventas := api.Group("/ventas")
		{
			ventas.POST("", ventasH.Crear)
			ventas.GET("", ventasH.Listar)
			ventas.GET("/:id", ventasH.Obtener)
			ventas.PATCH("/:id", ventasH.Actualizar)
		}

		inventario := api.Group("/inventario")
		{
			inventario.GET("/movimientos", productosH.Movimientos)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
