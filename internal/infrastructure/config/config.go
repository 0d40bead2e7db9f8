package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// DefaultJWTSecret is only acceptable in development; startup logs a warning
// when it is still in effect.
const DefaultJWTSecret = "development-only-secret-change-in-production"

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth      AuthConfig
	Store     StoreConfig
	RateLimit RateLimitConfig
}

type AuthConfig struct {
	JWTSecret           string `env:"AUTH_JWT_SECRET,             default=development-only-secret-change-in-production"`
	JWTIssuer           string `env:"AUTH_JWT_ISSUER,             default=warehouse-api"`
	JWTAudience         string `env:"AUTH_JWT_AUDIENCE,           default=warehouse-clients"`
	JWTExpiresInSeconds int    `env:"AUTH_JWT_EXPIRES_IN_SECONDS, default=900"`
	BcryptCost          int    `env:"AUTH_BCRYPT_COST,            default=10"`
}

// TokenTTL returns the configured token lifetime as a duration.
func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.JWTExpiresInSeconds) * time.Second
}

type StoreConfig struct {
	// Backend selects the repository implementation: "memory" or "mongo".
	Backend string `env:"STORE_BACKEND, default=memory"`

	Mongo MongoConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=warehouse"`
}

type RateLimitConfig struct {
	RegisterPerMinute int `env:"RATE_LIMIT_REGISTER_PER_MINUTE, default=3"`
	TokenPerMinute    int `env:"RATE_LIMIT_TOKEN_PER_MINUTE,    default=5"`

	// RedisAddr switches the limiter to the Redis backend when non-empty.
	RedisAddr string `env:"RATE_LIMIT_REDIS_ADDR"`
	RedisDB   int    `env:"RATE_LIMIT_REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
