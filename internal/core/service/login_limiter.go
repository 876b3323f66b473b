package service

import (
	"context"
	"fmt"
	"time"

	"github.com/itops/asset-tracker/internal/core/ports"
)

const (
	defaultAttemptLimit  = 5
	defaultAttemptWindow = time.Minute
)

// LoginLimiter caps login attempts per client key over a rolling window.
// Attempt bookkeeping lives in the store (a Redis sorted set in production),
// so the limiter itself is stateless and safe under concurrent workers.
type LoginLimiter struct {
	store  ports.RateLimitStore
	limit  int
	window time.Duration
	now    func() time.Time
}

func NewLoginLimiter(store ports.RateLimitStore, limit int, window time.Duration) *LoginLimiter {
	if limit <= 0 {
		limit = defaultAttemptLimit
	}
	if window <= 0 {
		window = defaultAttemptWindow
	}
	return &LoginLimiter{store: store, limit: limit, window: window, now: time.Now}
}

// Allow reports whether another attempt from key may proceed and records it
// when it may. A denied attempt is not recorded: the lockout lasts until the
// oldest recorded attempt leaves the window, measured from window start, and
// is never extended by further rejected tries. Successful logins are counted
// the same as failures.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := l.now().UTC()

	count, err := l.store.CountAttempts(ctx, key, l.window, now)
	if err != nil {
		return false, fmt.Errorf("count attempts: %w", err)
	}
	if count >= l.limit {
		return false, nil
	}

	if err := l.store.RecordAttempt(ctx, key, now); err != nil {
		return false, fmt.Errorf("record attempt: %w", err)
	}
	return true, nil
}
