package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestMemoryLimiterFixedWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewMemoryLimiter()
	limiter.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		decision, err := limiter.Allow(ctx, "register:1.2.3.4", 3, time.Minute)
		if err != nil {
			t.Fatalf("Allow: %v", err)
		}
		if !decision.Allowed {
			t.Fatalf("request %d denied within limit", i+1)
		}
		if want := 3 - (i + 1); decision.Remaining != want {
			t.Errorf("request %d: remaining = %d, want %d", i+1, decision.Remaining, want)
		}
	}

	decision, err := limiter.Allow(ctx, "register:1.2.3.4", 3, time.Minute)
	if err != nil {
		t.Fatalf("Allow: %v", err)
	}
	if decision.Allowed {
		t.Fatal("fourth request allowed over the limit")
	}
	if !decision.ResetAt.Equal(now.Add(time.Minute)) {
		t.Errorf("resetAt = %v, want window end", decision.ResetAt)
	}
}

func TestMemoryLimiterWindowReset(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewMemoryLimiter()
	limiter.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := limiter.Allow(ctx, "token:1.2.3.4", 2, time.Minute); err != nil {
			t.Fatalf("Allow: %v", err)
		}
	}
	decision, err := limiter.Allow(ctx, "token:1.2.3.4", 2, time.Minute)
	if err != nil {
		t.Fatalf("Allow: %v", err)
	}
	if decision.Allowed {
		t.Fatal("request allowed over the limit")
	}

	// Past the window end the counter starts over.
	now = now.Add(time.Minute + time.Second)
	decision, err = limiter.Allow(ctx, "token:1.2.3.4", 2, time.Minute)
	if err != nil {
		t.Fatalf("Allow: %v", err)
	}
	if !decision.Allowed {
		t.Fatal("request denied after the window reset")
	}
	if decision.Remaining != 1 {
		t.Errorf("remaining = %d, want 1", decision.Remaining)
	}
}

func TestMemoryLimiterKeysAreIndependent(t *testing.T) {
	limiter := NewMemoryLimiter()
	ctx := context.Background()

	if _, err := limiter.Allow(ctx, "register:1.1.1.1", 1, time.Minute); err != nil {
		t.Fatalf("Allow: %v", err)
	}
	decision, err := limiter.Allow(ctx, "register:2.2.2.2", 1, time.Minute)
	if err != nil {
		t.Fatalf("Allow: %v", err)
	}
	if !decision.Allowed {
		t.Fatal("second client throttled by the first client's counter")
	}
}

func TestMemoryLimiterZeroLimitAllows(t *testing.T) {
	limiter := NewMemoryLimiter()

	decision, err := limiter.Allow(context.Background(), "anything", 0, time.Minute)
	if err != nil {
		t.Fatalf("Allow: %v", err)
	}
	if !decision.Allowed {
		t.Fatal("non-positive limit should disable throttling")
	}
}
