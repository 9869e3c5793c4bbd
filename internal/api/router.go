package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/commerce-api/docs"
	"github.com/99minutos/commerce-api/internal/api/handler"
	"github.com/99minutos/commerce-api/internal/api/middleware"
	"github.com/99minutos/commerce-api/internal/core/domain"
	"github.com/99minutos/commerce-api/internal/core/ports"
)

// Dependencies carries everything the HTTP layer needs.
type Dependencies struct {
	Auth      ports.AuthService
	Products  ports.ProductService
	Users     ports.UserService
	Carts     ports.CartService
	Orders    ports.OrderService
	Customers ports.CustomerService

	// Health lists optional backing stores for the readiness probe.
	Health map[string]handler.Pinger
	Log    zerolog.Logger

	// Registry receives the HTTP metrics and backs /metrics. Nil means the
	// default registry, which also holds the domain metrics.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderAuthorization,
			echo.HeaderXRequestedWith,
			"X-XSRF-TOKEN",
			echo.HeaderContentType,
			echo.HeaderAccept,
			handler.HeaderIdempotencyKey,
		},
		AllowMethods: []string{
			http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodPatch, http.MethodOptions,
		},
	}))
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if d.Registry != nil {
		registerer, gatherer = d.Registry, d.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "commerce",
		Registerer: registerer,
	}))

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Health)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	session := middleware.Session(d.Auth)
	productAdmin := middleware.RequireRoles(d.Auth, domain.RoleAdmin, domain.RoleProductAdmin)
	userAdmin := middleware.RequireRoles(d.Auth, domain.RoleAdmin, domain.RoleUserAdmin)

	api := e.Group("/api")

	// --- Products: reads are public ---
	products := handler.NewProductHandler(d.Products)
	pg := api.Group("/products")
	pg.GET("", products.All)
	pg.GET("/:id", products.Get)
	for _, prefix := range []string{
		"",
		"/type/:type",
		"/search/:search",
		"/sort/:sortBy/:sortVal",
		"/type/:type/sort/:sortBy/:sortVal",
		"/type/:type/search/:search",
		"/search/:search/sort/:sortBy/:sortVal",
		"/type/:type/search/:search/sort/:sortBy/:sortVal",
	} {
		pg.GET(prefix+"/page/:skip/:top", products.Page)
	}
	pg.POST("", products.Create, session, productAdmin)
	pg.PUT("/:id", products.Update, session, productAdmin)
	pg.DELETE("/:id", products.Delete, session, productAdmin)

	// --- Orders ---
	orders := handler.NewOrderHandler(d.Orders)
	og := api.Group("/orders", session)
	og.GET("/:id", orders.List)
	og.GET("/:id/search/:search", orders.List)

	// --- Carts ---
	carts := handler.NewCartHandler(d.Carts)
	cg := api.Group("/carts", session)
	cg.GET("/:id", carts.List)
	cg.POST("/:id", carts.Add)
	cg.DELETE("/:id/:idOrder", carts.Remove)
	cg.POST("/checkout/:id", carts.Checkout)

	// --- Auth ---
	auth := handler.NewAuthHandler(d.Auth)
	ag := api.Group("/auth")
	ag.POST("/login", auth.Login)
	ag.POST("/register", auth.Register)
	ag.POST("/authWithToken", auth.AuthWithToken)
	ag.POST("/logout", auth.Logout)

	// --- Users ---
	users := handler.NewUserHandler(d.Users)
	ug := api.Group("/users", session)
	ug.GET("", users.All, userAdmin)
	ug.GET("/page/:skip/:top", users.Page, userAdmin)
	ug.GET("/search/:search/page/:skip/:top", users.Page, userAdmin)
	ug.GET("/:id", users.Get, userAdmin)
	ug.POST("", users.Create, userAdmin)
	ug.PUT("/:id", users.Update)
	ug.DELETE("/:id", users.Delete, userAdmin)

	// --- Admin ---
	adm := api.Group("/admin", session, userAdmin)
	adm.PUT("/account-setting/:id", users.AccountSetting)
	adm.PUT("/user-role/:id", users.UserRole)

	// --- Customers ---
	customers := handler.NewCustomerHandler(d.Customers)
	csg := api.Group("/customers", session, userAdmin)
	csg.GET("/page/:skip/:top", customers.Page)
	csg.GET("/search/:search/page/:skip/:top", customers.Page)
	csg.GET("/city/:city/page/:skip/:top", customers.Page)
	csg.GET("/:id", customers.Get)

	return e
}
