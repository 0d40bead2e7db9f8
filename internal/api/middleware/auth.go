package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/warehousehq/warehouse-api/internal/api/metrics"
	"github.com/warehousehq/warehouse-api/internal/core/token"
)

// ClaimsKey is the echo context key the validated claims are stored under.
const ClaimsKey = "auth_claims"

// Auth runs every incoming token through the authorization gate and injects
// the validated claims into the request context. requiredRoles lists the
// capabilities that may use the route; the gate's denial policy decides
// between 401 and 403.
func Auth(gate *token.Gate, requiredRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, denial := gate.Authorize(bearerToken(c.Request()), requiredRoles...)
			if denial != nil {
				metrics.AccessDeniedTotal.WithLabelValues(string(denial.Kind)).Inc()
				status := http.StatusUnauthorized
				if denial.Kind == token.DenialForbidden {
					status = http.StatusForbidden
				}
				return echo.NewHTTPError(status, denial.Message)
			}

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom returns the claims injected by Auth, or nil outside a protected
// route.
func ClaimsFrom(c echo.Context) *token.Claims {
	claims, _ := c.Get(ClaimsKey).(*token.Claims)
	return claims
}

// bearerToken extracts the token from "Authorization: Bearer <token>". A
// missing header or a different scheme both yield the empty string, which
// the gate treats as "no token".
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
