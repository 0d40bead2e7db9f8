package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/warehousehq/warehouse-api/internal/api/metrics"
	"github.com/warehousehq/warehouse-api/internal/infrastructure/ratelimit"
)

const rateLimitWindow = time.Minute

// RateLimit throttles an endpoint per client IP with a fixed one-minute
// window. Limiter failures are logged and fail open: throttling is
// protection, not a correctness requirement.
func RateLimit(limiter ratelimit.Limiter, endpoint string, perMinute int, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := endpoint + ":" + c.RealIP()

			decision, err := limiter.Allow(c.Request().Context(), key, perMinute, rateLimitWindow)
			if err != nil {
				log.Warn().Err(err).Str("endpoint", endpoint).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}

			if !decision.Allowed {
				metrics.RateLimitRejectionsTotal.WithLabelValues(endpoint).Inc()
				if retryAfter := int(time.Until(decision.ResetAt).Seconds()); retryAfter > 0 {
					c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
				}
				return echo.NewHTTPError(http.StatusTooManyRequests, "Rate limit exceeded")
			}

			return next(c)
		}
	}
}
