package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/warehousehq/warehouse-api/internal/infrastructure/ratelimit"
)

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string, int, time.Duration) (ratelimit.Decision, error) {
	return ratelimit.Decision{}, errors.New("limiter backend down")
}

func throttledEcho(limiter ratelimit.Limiter, perMinute int) *echo.Echo {
	e := echo.New()
	e.POST("/auth/register", func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	}, RateLimit(limiter, "register", perMinute, zerolog.Nop()))
	return e
}

func postRegister(e *echo.Echo) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/register", nil)
	req.RemoteAddr = "10.0.0.1:52100"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitThrottlesOverLimit(t *testing.T) {
	e := throttledEcho(ratelimit.NewMemoryLimiter(), 3)

	for i := 0; i < 3; i++ {
		rec := postRegister(e)
		if rec.Code != http.StatusCreated {
			t.Fatalf("request %d: status = %d, want 201", i+1, rec.Code)
		}
	}

	rec := postRegister(e)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("Retry-After header missing on throttled response")
	}
}

func TestRateLimitSeparatesClients(t *testing.T) {
	e := throttledEcho(ratelimit.NewMemoryLimiter(), 1)

	if rec := postRegister(e); rec.Code != http.StatusCreated {
		t.Fatalf("first request: status = %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/auth/register", nil)
	req.RemoteAddr = "10.0.0.2:52100"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("other client throttled: status = %d", rec.Code)
	}
}

func TestRateLimitFailsOpen(t *testing.T) {
	e := throttledEcho(failingLimiter{}, 1)

	for i := 0; i < 5; i++ {
		rec := postRegister(e)
		if rec.Code != http.StatusCreated {
			t.Fatalf("request %d: status = %d, want fail-open 201", i+1, rec.Code)
		}
	}
}
