package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const attemptKeyPrefix = "login_attempts"

// LoginAttemptStore keeps per-client login attempt timestamps in a Redis
// sorted set scored by nanosecond timestamps. Writes from concurrent workers
// land in the same set, so the window count converges without coordination.
type LoginAttemptStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLoginAttemptStore creates a store whose keys expire after ttl (normally
// the rate-limit window, so idle clients cost nothing).
func NewLoginAttemptStore(client *redis.Client, ttl time.Duration) *LoginAttemptStore {
	return &LoginAttemptStore{client: client, ttl: ttl}
}

// RecordAttempt stores the attempt timestamp and refreshes the key TTL.
func (s *LoginAttemptStore) RecordAttempt(ctx context.Context, key string, at time.Time) error {
	k := s.key(key)
	member := redis.Z{Score: float64(at.UnixNano()), Member: at.UnixNano()}

	if err := s.client.ZAdd(ctx, k, member).Err(); err != nil {
		return fmt.Errorf("redis zadd: %w", err)
	}
	if s.ttl > 0 {
		if err := s.client.Expire(ctx, k, s.ttl).Err(); err != nil {
			return fmt.Errorf("redis expire: %w", err)
		}
	}
	return nil
}

// CountAttempts returns the number of attempts inside the window ending at
// reference, trimming anything older as a side effect.
func (s *LoginAttemptStore) CountAttempts(ctx context.Context, key string, window time.Duration, reference time.Time) (int, error) {
	k := s.key(key)
	threshold := fmt.Sprintf("%f", float64(reference.Add(-window).UnixNano()))

	if err := s.client.ZRemRangeByScore(ctx, k, "-inf", "("+threshold).Err(); err != nil {
		return 0, fmt.Errorf("redis zremrangebyscore: %w", err)
	}

	count, err := s.client.ZCount(ctx, k, threshold, fmt.Sprintf("%f", float64(reference.UnixNano()))).Result()
	if err != nil {
		return 0, fmt.Errorf("redis zcount: %w", err)
	}
	return int(count), nil
}

func (s *LoginAttemptStore) key(clientKey string) string {
	return fmt.Sprintf("%s:%s", attemptKeyPrefix, clientKey)
}
