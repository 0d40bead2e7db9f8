// Package metrics defines the custom Prometheus metrics for the warehouse
// API. It is the single source of truth for metric names, labels, and help
// strings; HTTP-level metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "warehouse"

// UsersRegisteredTotal counts successful registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of successfully registered users.",
	},
)

// TokensIssuedTotal counts successfully issued access tokens.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of access tokens issued.",
	},
)

// AuthFailuresTotal counts failed register/token attempts.
// Label:
//   - reason: "username_taken" or "invalid_credentials"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of failed registration or login attempts.",
	},
	[]string{"reason"},
)

// AccessDeniedTotal counts requests refused by the authorization gate.
// Label:
//   - kind: "unauthenticated" (401) or "forbidden" (403)
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of requests denied by the authorization gate.",
	},
	[]string{"kind"},
)

// RateLimitRejectionsTotal counts throttled requests per endpoint.
var RateLimitRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limit_rejections_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	},
	[]string{"endpoint"},
)
