package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/warehousehq/warehouse-api/internal/api/handler"
	"github.com/warehousehq/warehouse-api/internal/api/middleware"
	"github.com/warehousehq/warehouse-api/internal/core/domain"
	"github.com/warehousehq/warehouse-api/internal/core/ports"
	"github.com/warehousehq/warehouse-api/internal/core/token"
	"github.com/warehousehq/warehouse-api/internal/infrastructure/config"
	"github.com/warehousehq/warehouse-api/internal/infrastructure/ratelimit"
)

// Dependencies carries everything the router needs; main wires it once.
type Dependencies struct {
	Config         *config.Config
	Logger         zerolog.Logger
	AuthService    ports.AuthService
	ProductService ports.ProductService
	Gate           *token.Gate
	Limiter        ratelimit.Limiter

	// Mongo and Redis are nil unless the corresponding backends are active;
	// the readiness probe only reports what is actually in use.
	Mongo *mongo.Database
	Redis *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("warehouse"))
	e.Use(requestLogger(deps.Logger))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	productHandler := handler.NewProductHandler(deps.ProductService)
	healthHandler := handler.NewHealthHandler(deps.Mongo, deps.Redis)
	indexHandler := handler.NewIndexHandler("Warehouse API", version)

	requireAnyRole := middleware.Auth(deps.Gate, domain.RoleAdmin, domain.RoleUser)
	requireAdmin := middleware.Auth(deps.Gate, domain.RoleAdmin)

	// --- Public surface ---
	e.GET("/", indexHandler.Index)
	e.GET("/health/live", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/docs/*", echoswagger.WrapHandler)

	// --- Auth ---
	rl := deps.Config.RateLimit
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register,
		middleware.RateLimit(deps.Limiter, "register", rl.RegisterPerMinute, deps.Logger))
	auth.POST("/token", authHandler.Token,
		middleware.RateLimit(deps.Limiter, "token", rl.TokenPerMinute, deps.Logger))

	// --- Protected surface ---
	e.GET("/health/ready", healthHandler.Readiness, requireAdmin)

	products := e.Group("/products")
	products.GET("", productHandler.List, requireAnyRole)
	products.GET("/:id", productHandler.Get, requireAnyRole)
	products.POST("", productHandler.Create, requireAdmin)
	products.PATCH("/:id", productHandler.Update, requireAdmin)
	products.DELETE("/:id", productHandler.Delete, requireAdmin)

	return e
}

const version = "0.1.0"

// requestLogger emits one structured line per request through zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Status >= 500 {
				event = log.Error()
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
