package ratelimit

import (
	"context"
	"sync"
	"time"
)

const defaultMaxKeys = 10000

type memoryBucket struct {
	count     int
	windowEnd time.Time
}

// MemoryLimiter is a mutex-guarded fixed-window counter per key. Expired
// buckets are garbage-collected lazily when the key budget fills up.
type MemoryLimiter struct {
	mu      sync.Mutex
	now     func() time.Time
	buckets map[string]*memoryBucket
	maxKeys int
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		now:     time.Now,
		buckets: make(map[string]*memoryBucket),
		maxKeys: defaultMaxKeys,
	}
}

func (m *MemoryLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (Decision, error) {
	if limit <= 0 {
		return Decision{Allowed: true, Limit: limit, Remaining: limit}, nil
	}

	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	bucket, ok := m.buckets[key]
	if ok && now.After(bucket.windowEnd) {
		delete(m.buckets, key)
		ok = false
	}
	if !ok {
		if len(m.buckets) >= m.maxKeys {
			m.gc(now)
		}
		bucket = &memoryBucket{windowEnd: now.Add(window)}
		m.buckets[key] = bucket
	}

	if bucket.count < limit {
		bucket.count++
		return Decision{
			Allowed:   true,
			Limit:     limit,
			Remaining: limit - bucket.count,
			ResetAt:   bucket.windowEnd,
		}, nil
	}

	return Decision{Allowed: false, Limit: limit, ResetAt: bucket.windowEnd}, nil
}

func (m *MemoryLimiter) gc(now time.Time) {
	for key, bucket := range m.buckets {
		if now.After(bucket.windowEnd) {
			delete(m.buckets, key)
		}
	}
}
