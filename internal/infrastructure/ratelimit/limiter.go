// Package ratelimit implements the fixed-window throttle applied to the
// auth endpoints. Two backends exist: an in-process limiter (default) and a
// Redis-backed one for multi-replica deployments.
package ratelimit

import (
	"context"
	"time"
)

// Decision is the outcome of a single Allow call.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter answers whether one more request under key fits in the current
// window. limit <= 0 disables limiting for that key.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (Decision, error)
}
