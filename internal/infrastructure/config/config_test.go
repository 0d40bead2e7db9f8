package config

import (
	"context"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("port = %q", cfg.Port)
	}
	if cfg.Auth.JWTSecret != DefaultJWTSecret {
		t.Errorf("secret = %q", cfg.Auth.JWTSecret)
	}
	if cfg.Auth.JWTIssuer != "warehouse-api" || cfg.Auth.JWTAudience != "warehouse-clients" {
		t.Errorf("issuer=%q audience=%q", cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience)
	}
	if cfg.Auth.TokenTTL() != 15*time.Minute {
		t.Errorf("ttl = %v", cfg.Auth.TokenTTL())
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Errorf("bcrypt cost = %d", cfg.Auth.BcryptCost)
	}
	if cfg.Store.Backend != "memory" {
		t.Errorf("store backend = %q", cfg.Store.Backend)
	}
	if cfg.RateLimit.RegisterPerMinute != 3 || cfg.RateLimit.TokenPerMinute != 5 {
		t.Errorf("rate limits = %d/%d", cfg.RateLimit.RegisterPerMinute, cfg.RateLimit.TokenPerMinute)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("AUTH_JWT_SECRET", "prod-secret")
	t.Setenv("AUTH_JWT_EXPIRES_IN_SECONDS", "60")
	t.Setenv("STORE_BACKEND", "mongo")
	t.Setenv("RATE_LIMIT_REDIS_ADDR", "localhost:6379")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("port = %q", cfg.Port)
	}
	if cfg.Auth.JWTSecret != "prod-secret" {
		t.Errorf("secret = %q", cfg.Auth.JWTSecret)
	}
	if cfg.Auth.TokenTTL() != time.Minute {
		t.Errorf("ttl = %v", cfg.Auth.TokenTTL())
	}
	if cfg.Store.Backend != "mongo" {
		t.Errorf("store backend = %q", cfg.Store.Backend)
	}
	if cfg.RateLimit.RedisAddr != "localhost:6379" {
		t.Errorf("redis addr = %q", cfg.RateLimit.RedisAddr)
	}
}
