package ports

import (
	"context"
	"time"
)

// SessionStore maps opaque session tokens to user ids with a TTL. Delete is
// idempotent. Find returns domain.ErrUnauthorized for unknown tokens.
type SessionStore interface {
	Save(ctx context.Context, token, userID string, ttl time.Duration) error
	Find(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}
