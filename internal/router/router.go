package router

import (
	"time"

	"github.com/Andreskammerath/BKK-procurement-system/internal/config"
	"github.com/Andreskammerath/BKK-procurement-system/internal/handler"
	"github.com/Andreskammerath/BKK-procurement-system/internal/middleware"
	"github.com/Andreskammerath/BKK-procurement-system/internal/model"
	"github.com/Andreskammerath/BKK-procurement-system/internal/repository"
	"github.com/Andreskammerath/BKK-procurement-system/internal/service"
	"github.com/Andreskammerath/BKK-procurement-system/internal/worker"

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
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	actividadRepo := repository.NewActividadRepository(db)
	documentoRepo := repository.NewDocumentoRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	articuloRepo := repository.NewArticuloRepository(db)
	despachanteRepo := repository.NewDespachanteRepository(db)
	solpedRepo := repository.NewSolpedRepository(db)
	pedidoCotizacionRepo := repository.NewPedidoCotizacionRepository(db)
	cotizacionRepo := repository.NewCotizacionRepository(db)
	ordenCompraRepo := repository.NewOrdenCompraRepository(db)
	remitoRepo := repository.NewRemitoRepository(db)
	envioRepo := repository.NewEnvioRepository(db)
	comunicacionRepo := repository.NewComunicacionRepository(db)

	// Worker dispatcher — VIEW audits go through the queue, everything else is
	// written synchronously inside the mutating transaction
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	actividadSvc := service.NewActividadService(actividadRepo, dispatcher)
	authSvc := service.NewAuthService(usuarioRepo, actividadSvc, db, cfg.JWTSecret,
		time.Duration(cfg.JWTExpirationHours)*time.Hour,
		time.Duration(cfg.JWTRefreshHours)*time.Hour)
	proveedorSvc := service.NewProveedorService(proveedorRepo, actividadSvc, db)
	clienteSvc := service.NewClienteService(clienteRepo, actividadSvc, db)
	articuloSvc := service.NewArticuloService(articuloRepo, actividadSvc, db)
	despachanteSvc := service.NewDespachanteService(despachanteRepo, actividadSvc, db)
	solpedSvc := service.NewSolpedService(solpedRepo, documentoRepo, actividadSvc)
	pedidoCotizacionSvc := service.NewPedidoCotizacionService(pedidoCotizacionRepo, documentoRepo, actividadSvc)
	cotizacionSvc := service.NewCotizacionService(cotizacionRepo, documentoRepo, actividadSvc)
	ordenCompraSvc := service.NewOrdenCompraService(ordenCompraRepo, documentoRepo, actividadSvc)
	logisticaSvc := service.NewLogisticaService(remitoRepo, envioRepo, documentoRepo, actividadSvc)
	comunicacionSvc := service.NewComunicacionService(comunicacionRepo, actividadSvc, db)
	transicionSvc := service.NewTransicionService(documentoRepo, actividadSvc)
	bajaSvc := service.NewBajaService(documentoRepo, actividadSvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	articulosH := handler.NewArticulosHandler(articuloSvc)
	despachantesH := handler.NewDespachantesHandler(despachanteSvc)
	solpedsH := handler.NewSolpedsHandler(solpedSvc)
	pedidosH := handler.NewPedidosCotizacionHandler(pedidoCotizacionSvc)
	cotizacionesH := handler.NewCotizacionesHandler(cotizacionSvc)
	ordenesH := handler.NewOrdenesCompraHandler(ordenCompraSvc, cfg)
	logisticaH := handler.NewLogisticaHandler(logisticaSvc)
	actividadesH := handler.NewActividadesHandler(actividadSvc)
	comunicacionesH := handler.NewComunicacionesHandler(comunicacionSvc)
	docsH := handler.NewDocumentosHandler(transicionSvc, bajaSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Role shorthands. COMPRADOR owns the supplier side, VENDEDOR the client
	// side; SUPERVISOR and ADMINISTRADOR can do both.
	todos := middleware.RequireRole(model.RolVendedor, model.RolComprador, model.RolAdministrador, model.RolSupervisor)
	compras := middleware.RequireRole(model.RolComprador, model.RolAdministrador, model.RolSupervisor)
	ventas := middleware.RequireRole(model.RolVendedor, model.RolAdministrador, model.RolSupervisor)
	supervision := middleware.RequireRole(model.RolAdministrador, model.RolSupervisor)
	admin := middleware.RequireRole(model.RolAdministrador)

	// docRoutes mounts the shared document surface (transition, successor
	// listing, soft delete, restore) under a group with its entidad tag.
	docRoutes := func(g *gin.RouterGroup, entidad string) {
		g.POST("/:id/transicion", docsH.Transicionar(entidad))
		g.GET("/:id/estados", docsH.Estados(entidad))
		g.DELETE("/:id", supervision, docsH.Eliminar(entidad))
		g.POST("/:id/restaurar", supervision, docsH.Restaurar(entidad))
	}

	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		usuarios := v1.Group("/usuarios", admin)
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.GET("/:id", usuariosH.Obtener)
			usuarios.PATCH("/:id/activo", usuariosH.CambiarActivo)
		}

		v1.GET("/proveedores", todos, proveedoresH.Listar)
		v1.GET("/proveedores/:id", todos, proveedoresH.Obtener)
		prov := v1.Group("/proveedores", compras)
		{
			prov.POST("", proveedoresH.Crear)
			prov.PUT("/:id", proveedoresH.Actualizar)
			prov.POST("/:id/formas-entrega", proveedoresH.VincularFormaEntrega)
			docRoutes(prov, model.EntidadProveedor)
		}
		v1.GET("/formas-entrega", todos, proveedoresH.ListarFormasEntrega)
		v1.POST("/formas-entrega", compras, proveedoresH.CrearFormaEntrega)

		v1.GET("/clientes", todos, clientesH.Listar)
		v1.GET("/clientes/:id", todos, clientesH.Obtener)
		cli := v1.Group("/clientes", ventas)
		{
			cli.POST("", clientesH.Crear)
			cli.PUT("/:id", clientesH.Actualizar)
			docRoutes(cli, model.EntidadCliente)
		}

		v1.GET("/articulos", todos, articulosH.Listar)
		v1.GET("/articulos/export", todos, articulosH.Exportar)
		v1.GET("/articulos/:id", todos, articulosH.Obtener)
		art := v1.Group("/articulos", compras)
		{
			art.POST("", articulosH.Crear)
			art.PUT("/:id", articulosH.Actualizar)
			docRoutes(art, model.EntidadArticulo)
		}

		v1.GET("/despachantes", todos, despachantesH.Listar)
		v1.GET("/despachantes/:id", todos, despachantesH.Obtener)
		desp := v1.Group("/despachantes", compras)
		{
			desp.POST("", despachantesH.Crear)
			desp.PUT("/:id", despachantesH.Actualizar)
			desp.DELETE("/:id", supervision, docsH.Eliminar(model.EntidadDespachante))
			desp.POST("/:id/restaurar", supervision, docsH.Restaurar(model.EntidadDespachante))
		}

		sol := v1.Group("/solpeds", compras)
		{
			sol.POST("", solpedsH.Crear)
			sol.GET("", solpedsH.Listar)
			sol.GET("/:id", solpedsH.Obtener)
			sol.POST("/:id/detalles", solpedsH.AgregarDetalle)
			sol.DELETE("/:id/detalles/:detalleId", solpedsH.QuitarDetalle)
			docRoutes(sol, model.EntidadSolped)
		}

		ped := v1.Group("/pedidos-cotizacion", ventas)
		{
			ped.POST("", pedidosH.Crear)
			ped.GET("", pedidosH.Listar)
			ped.GET("/:id", pedidosH.Obtener)
			ped.POST("/:id/solpeds", pedidosH.VincularSolped)
			docRoutes(ped, model.EntidadPedidoCotizacion)
		}

		pedProv := v1.Group("/pedidos-cotizacion-proveedor", compras)
		{
			pedProv.POST("", pedidosH.CrearProveedor)
			pedProv.GET("", pedidosH.ListarProveedor)
			pedProv.GET("/:id", pedidosH.ObtenerProveedor)
			pedProv.POST("/:id/detalles", pedidosH.AgregarDetalleProveedor)
			docRoutes(pedProv, model.EntidadPedidoCotizacionProveedor)
		}

		cotProv := v1.Group("/cotizaciones-proveedor", compras)
		{
			cotProv.POST("", cotizacionesH.CrearProveedor)
			cotProv.GET("", cotizacionesH.ListarProveedor)
			cotProv.GET("/:id", cotizacionesH.ObtenerProveedor)
			cotProv.POST("/:id/detalles", cotizacionesH.AgregarDetalleProveedor)
			docRoutes(cotProv, model.EntidadCotizacionProveedor)
		}

		cot := v1.Group("/cotizaciones", ventas)
		{
			cot.POST("", cotizacionesH.Crear)
			cot.GET("", cotizacionesH.Listar)
			cot.GET("/:id", cotizacionesH.Obtener)
			cot.POST("/:id/solpeds", cotizacionesH.VincularSolped)
			cot.GET("/:id/ganadores", cotizacionesH.ListarGanadores)
			cot.POST("/:id/ganadores", cotizacionesH.SeleccionarGanador)
			docRoutes(cot, model.EntidadCotizacion)
		}

		ocProv := v1.Group("/ordenes-compra-proveedor", compras)
		{
			ocProv.POST("", ordenesH.CrearProveedor)
			ocProv.GET("", ordenesH.ListarProveedor)
			ocProv.GET("/:id", ordenesH.ObtenerProveedor)
			ocProv.GET("/:id/pdf", ordenesH.PDFProveedor)
			ocProv.POST("/:id/detalles", ordenesH.AgregarDetalleProveedor)
			docRoutes(ocProv, model.EntidadOrdenCompraProveedor)
		}

		ocCli := v1.Group("/ordenes-compra-cliente", ventas)
		{
			ocCli.POST("", ordenesH.CrearCliente)
			ocCli.GET("", ordenesH.ListarCliente)
			ocCli.GET("/:id", ordenesH.ObtenerCliente)
			ocCli.POST("/:id/detalles", ordenesH.AgregarDetalleCliente)
			docRoutes(ocCli, model.EntidadOrdenCompraCliente)
		}

		rem := v1.Group("/remitos", ventas)
		{
			rem.POST("", logisticaH.CrearRemito)
			rem.GET("", logisticaH.ListarRemitos)
			rem.GET("/:id", logisticaH.ObtenerRemito)
			rem.POST("/:id/detalles", logisticaH.AgregarDetalleRemito)
			docRoutes(rem, model.EntidadRemito)
		}

		env := v1.Group("/envios", ventas)
		{
			env.POST("", logisticaH.CrearEnvio)
			env.GET("", logisticaH.ListarEnvios)
			env.GET("/:id", logisticaH.ObtenerEnvio)
			docRoutes(env, model.EntidadEnvio)
		}
		v1.GET("/envios/rastreo/:numero", todos, logisticaH.Rastrear)

		v1.GET("/actividades", supervision, actividadesH.Listar)

		com := v1.Group("/comunicaciones", todos)
		{
			com.POST("", comunicacionesH.Crear)
			com.GET("", comunicacionesH.Listar)
			com.GET("/:id", comunicacionesH.Obtener)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
