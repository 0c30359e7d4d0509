package router

import (
	"time"

	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/config"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/handler"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/infra"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/middleware"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/repository"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/service"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, bascula *infra.BasculaClient, dispatcher *worker.Dispatcher) *gin.Engine {
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
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	cajaRepo := repository.NewCajaRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	compraRepo := repository.NewCompraRepository(db)
	pagoRepo := repository.NewPagoRepository(db)
	mermaRepo := repository.NewMermaRepository(db)
	historialPrecioRepo := repository.NewHistorialPrecioRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	productoSvc := service.NewProductoService(productoRepo, historialPrecioRepo, rdb)
	carritoSvc := service.NewCarritoService(productoRepo)
	ventaSvc := service.NewVentaService(ventaRepo, productoRepo, carritoSvc, dispatcher)
	inventarioSvc := service.NewInventarioService(productoRepo, compraRepo, mermaRepo, proveedorRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo, compraRepo, pagoRepo)
	cajaSvc := service.NewCajaService(cajaRepo, ventaRepo, pagoRepo)
	reporteSvc := service.NewReporteService(ventaRepo, mermaRepo, pagoRepo, cajaRepo, cajaSvc)
	respaldoSvc := service.NewRespaldoService(db)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	posH := handler.NewPOSHandler(carritoSvc, ventaSvc, bascula)
	ventasH := handler.NewVentasHandler(ventaSvc)
	inventarioH := handler.NewInventarioHandler(inventarioSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	cajaH := handler.NewCajaHandler(cajaSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)
	respaldoH := handler.NewRespaldoHandler(respaldoSvc)
	consultaH := handler.NewConsultaPreciosHandler(productoRepo, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, bascula))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Price check kiosk — no auth required
	r.GET("/v1/precio/:codigo", consultaH.GetPrecioPorCodigo)

	// Protected routes — capabilities declared per group via RequirePermiso
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		pos := v1.Group("/pos", middleware.RequirePermiso(service.Permite(service.AccionVender)))
		{
			pos.POST("/carritos", posH.CrearCarrito)
			pos.GET("/carritos/:id", posH.ObtenerCarrito)
			pos.POST("/carritos/:id/lineas", posH.AgregarLinea)
			pos.PATCH("/carritos/:id/lineas/:productoId", posH.AjustarLinea)
			pos.DELETE("/carritos/:id/lineas/:productoId", posH.QuitarLinea)
			pos.POST("/carritos/:id/suspender", posH.Suspender)
			pos.POST("/carritos/:id/cobrar", posH.Cobrar)
			pos.GET("/espera", posH.ListarEnEspera)
			pos.POST("/espera/:id/reanudar", posH.Reanudar)
			pos.GET("/peso", posH.LeerPeso)
			pos.GET("/folio", posH.SiguienteFolio)
		}

		v1.GET("/ventas", middleware.RequirePermiso(service.Permite(service.AccionVender)), ventasH.Listar)
		v1.GET("/ventas/:id", middleware.RequirePermiso(service.Permite(service.AccionVender)), ventasH.Obtener)
		v1.POST("/ventas/:id/cancelar", middleware.RequirePermiso(service.Permite(service.AccionCancelarVenta)), ventasH.Cancelar)

		// Catalog: anyone who sells can read; writes need the management permit
		v1.GET("/productos", middleware.RequirePermiso(service.Permite(service.AccionVender)), productosH.Listar)
		v1.GET("/productos/:id", middleware.RequirePermiso(service.Permite(service.AccionVender)), productosH.Obtener)
		prods := v1.Group("/productos", middleware.RequirePermiso(service.Permite(service.AccionGestionarProductos)))
		{
			prods.POST("", productosH.Crear)
			prods.PUT("/:id", productosH.Actualizar)
			prods.DELETE("/:id", productosH.Desactivar)
			prods.PATCH("/:id/reactivar", productosH.Reactivar)
		}
		precios := v1.Group("", middleware.RequirePermiso(service.Permite(service.AccionEditarPrecios)))
		{
			precios.PUT("/productos/precios", productosH.ActualizarPrecios)
			precios.GET("/productos/:id/historial-precios", productosH.HistorialPrecios)
		}

		compras := v1.Group("/compras", middleware.RequirePermiso(service.Permite(service.AccionRegistrarCompras)))
		{
			compras.POST("", inventarioH.RegistrarCompra)
			compras.GET("", inventarioH.ListarCompras)
		}
		mermas := v1.Group("/mermas", middleware.RequirePermiso(service.Permite(service.AccionRegistrarMermas)))
		{
			mermas.POST("", inventarioH.RegistrarMerma)
			mermas.GET("", inventarioH.ListarMermas)
		}

		prov := v1.Group("/proveedores", middleware.RequirePermiso(service.Permite(service.AccionGestionarProveedores)))
		{
			prov.POST("", proveedoresH.Crear)
			prov.GET("", proveedoresH.Listar)
			prov.GET("/:id", proveedoresH.Obtener)
			prov.PUT("/:id", proveedoresH.Actualizar)
			prov.DELETE("/:id", proveedoresH.Desactivar)
			prov.PATCH("/:id/reactivar", proveedoresH.Reactivar)
			prov.POST("/:id/abonos", proveedoresH.RegistrarAbono)
			prov.GET("/:id/estado-cuenta", proveedoresH.EstadoCuenta)
		}

		caja := v1.Group("/caja", middleware.RequirePermiso(service.Permite(service.AccionOperarCaja)))
		{
			caja.POST("/abrir", cajaH.Abrir)
			caja.POST("/cerrar", cajaH.Cerrar)
			caja.GET("/activa", cajaH.Activa)
		}
		v1.GET("/caja/historial", middleware.RequirePermiso(service.Permite(service.AccionVerReportes)), cajaH.Historial)

		reportes := v1.Group("/reportes", middleware.RequirePermiso(service.Permite(service.AccionVerReportes)))
		{
			reportes.GET("/resumen", reportesH.Resumen)
			reportes.GET("/movimientos", reportesH.Movimientos)
			reportes.GET("/movimientos/csv", reportesH.ExportarCSV)
			reportes.GET("/serie", reportesH.Serie)
		}

		usuarios := v1.Group("/usuarios", middleware.RequirePermiso(service.Permite(service.AccionGestionarUsuarios)))
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Desactivar)
			usuarios.PATCH("/:id/reactivar", usuariosH.Reactivar)
		}

		respaldo := v1.Group("/respaldo", middleware.RequirePermiso(service.Permite(service.AccionRespaldos)))
		{
			respaldo.GET("/exportar", respaldoH.Exportar)
			respaldo.POST("/restaurar", respaldoH.Restaurar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
