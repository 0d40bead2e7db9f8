// Command server runs the warehouse API.
//
// @title                       Warehouse API
// @version                     0.1.0
// @description                 Warehouse product management API with token-based access control.
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/warehousehq/warehouse-api/docs"
	"github.com/warehousehq/warehouse-api/internal/api"
	"github.com/warehousehq/warehouse-api/internal/core/domain"
	"github.com/warehousehq/warehouse-api/internal/core/ports"
	"github.com/warehousehq/warehouse-api/internal/core/service"
	"github.com/warehousehq/warehouse-api/internal/core/token"
	"github.com/warehousehq/warehouse-api/internal/infrastructure/config"
	"github.com/warehousehq/warehouse-api/internal/infrastructure/ratelimit"
	"github.com/warehousehq/warehouse-api/internal/infrastructure/store/memory"
	mongostore "github.com/warehousehq/warehouse-api/internal/infrastructure/store/mongo"
	"github.com/warehousehq/warehouse-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.Auth.JWTSecret == config.DefaultJWTSecret && cfg.Env != "development" {
		log.Warn().Msg("AUTH_JWT_SECRET is still the development default; override it in production")
	}

	// --- Repositories ---
	var (
		users    ports.UserRepository
		products ports.ProductRepository
		mongoDB  *mongo.Database
	)
	switch cfg.Store.Backend {
	case "mongo":
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Store.Mongo.URI,
			Database: cfg.Store.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}()
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("mongo index creation failed")
		}
		users = mongostore.NewUserRepository(db)
		products = mongostore.NewProductRepository(db)
		mongoDB = db
	default:
		users = memory.NewUserStore()
		productStore := memory.NewProductStore()
		if cfg.Env == "development" {
			productStore.Seed(demoProducts())
		}
		products = productStore
	}

	// --- Rate limiter ---
	var (
		limiter     ratelimit.Limiter
		redisClient *redis.Client
	)
	if cfg.RateLimit.RedisAddr != "" {
		redisClient, err = ratelimit.ConnectRedis(ctx, cfg.RateLimit.RedisAddr, cfg.RateLimit.RedisDB)
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer redisClient.Close()
		limiter = ratelimit.NewRedisLimiter(redisClient)
	} else {
		limiter = ratelimit.NewMemoryLimiter()
	}

	// --- Core wiring ---
	tokenCfg := token.Config{
		Secret:       cfg.Auth.JWTSecret,
		Issuer:       cfg.Auth.JWTIssuer,
		Audience:     cfg.Auth.JWTAudience,
		ExpiresIn:    cfg.Auth.TokenTTL(),
		AllowedRoles: domain.AllowedRoles,
	}
	hasher := service.NewPasswordHasher(cfg.Auth.BcryptCost)
	issuer := token.NewIssuer(tokenCfg)
	gate := token.NewGate(token.NewValidator(tokenCfg))

	authService := service.NewAuthService(users, hasher, issuer, cfg.Auth.TokenTTL(), log)
	productService := service.NewProductService(products, log)

	e := api.NewRouter(api.Dependencies{
		Config:         cfg,
		Logger:         log,
		AuthService:    authService,
		ProductService: productService,
		Gate:           gate,
		Limiter:        limiter,
		Mongo:          mongoDB,
		Redis:          redisClient,
	})

	// --- Serve ---
	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.Store.Backend).Msg("warehouse api listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// demoProducts seeds the development catalog so the list endpoint has
// something to show on a fresh start.
func demoProducts() []domain.Product {
	seeded := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	return []domain.Product{
		{
			ID:             "prod-001",
			SKU:            "SKU-APPLE-001",
			Barcode:        "7501001001001",
			Name:           "Apple Box",
			Category:       "Frutas",
			Brand:          "Fresh Farm",
			Quantity:       40,
			MinimumStock:   12,
			UnitPriceCents: 599,
			Status:         domain.ProductActive,
			Location:       "A-01",
			CreatedAt:      seeded,
			UpdatedAt:      seeded,
		},
		{
			ID:             "prod-002",
			SKU:            "SKU-MILK-002",
			Barcode:        "7502002002002",
			Name:           "Milk Pack",
			Category:       "Lacteos",
			Brand:          "Campo Azul",
			Quantity:       12,
			MinimumStock:   8,
			UnitPriceCents: 249,
			Status:         domain.ProductActive,
			Location:       "B-03",
			CreatedAt:      seeded.AddDate(0, 0, 1),
			UpdatedAt:      seeded.AddDate(0, 0, 1),
		},
	}
}
