package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopverse/storefront/internal/api/handler"
	"github.com/shopverse/storefront/internal/api/middleware"
	"github.com/shopverse/storefront/internal/core/domain"
	"github.com/shopverse/storefront/internal/core/ports"
)

const metricsSubsystem = "storefront"

// Dependencies are the collaborators the HTTP layer is built from. Mongo and
// Redis are only used for readiness checks and may be nil.
type Dependencies struct {
	Sessions  ports.SessionManager
	Catalog   ports.CatalogService
	Checkout  ports.CheckoutService
	Tokens    ports.TokenIssuer
	JWTSecret string
	PageSize  int

	Mongo *mongo.Database
	Redis *redis.Client
	Log   zerolog.Logger
	// Metrics receives the HTTP metrics and backs /metrics. Nil means the
	// default Prometheus registry, where the domain metrics live.
	Metrics *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Metrics != nil {
		registerer, gatherer = deps.Metrics, deps.Metrics
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  metricsSubsystem,
		Registerer: registerer,
	}))

	// --- Ops (no session, no auth) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Dependencies ---
	productHandler := handler.NewProductHandler(deps.Catalog, deps.PageSize)
	authHandler := handler.NewAuthHandler(deps.Tokens)
	cartHandler := handler.NewCartHandler(deps.Catalog)
	checkoutHandler := handler.NewCheckoutHandler(deps.Checkout)
	adminHandler := handler.NewAdminHandler(deps.Catalog, deps.Checkout)

	authMiddleware := middleware.Auth(deps.JWTSecret)
	boundMiddleware := middleware.SessionBound(deps.Sessions)

	v1 := e.Group("/v1", middleware.Session(deps.Sessions))

	// --- Catalog ---
	v1.GET("/products", productHandler.List)
	v1.GET("/products/featured", productHandler.Featured)
	v1.GET("/products/:id", productHandler.Get)
	v1.GET("/categories", productHandler.Categories)

	// --- Auth & account ---
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/logout", authHandler.Logout)
	v1.GET("/auth/me", authHandler.Me)
	v1.PATCH("/account/profile", authHandler.UpdateProfile)
	v1.GET("/account/orders", checkoutHandler.History, authMiddleware, boundMiddleware)

	// --- Cart & checkout ---
	v1.GET("/cart", cartHandler.Get)
	v1.DELETE("/cart", cartHandler.Clear)
	v1.POST("/cart/items", cartHandler.Add)
	v1.PATCH("/cart/items/:id", cartHandler.Update)
	v1.DELETE("/cart/items/:id", cartHandler.Remove)
	v1.GET("/checkout/summary", checkoutHandler.Summary)
	v1.POST("/checkout", checkoutHandler.PlaceOrder)

	// --- Admin ---
	admin := v1.Group("/admin", authMiddleware, boundMiddleware, middleware.RBAC(domain.RoleAdmin))
	admin.POST("/products", adminHandler.CreateProduct)
	admin.PUT("/products/:id", adminHandler.UpdateProduct)
	admin.DELETE("/products/:id", adminHandler.DeleteProduct)
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/orders", adminHandler.Orders)
	admin.PATCH("/orders/:id/status", adminHandler.UpdateOrderStatus)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("session_id", c.Response().Header().Get(middleware.HeaderSessionID)).
				Msg("request")
			return nil
		},
	})
}
