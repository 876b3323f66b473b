package ports

import (
	"context"
	"time"
)

// RateLimitStore keeps per-key login attempt timestamps for the sliding
// window. Backed by Redis sorted sets in production.
type RateLimitStore interface {
	RecordAttempt(ctx context.Context, key string, at time.Time) error
	CountAttempts(ctx context.Context, key string, window time.Duration, reference time.Time) (int, error)
}

// LoginLimiter caps login attempts per client address.
type LoginLimiter interface {
	// Allow reports whether another attempt from key may proceed, and records
	// it when it may. Denied attempts are not recorded, so the lockout ends
	// when the oldest recorded attempt ages out of the window.
	Allow(ctx context.Context, key string) (bool, error)
}
