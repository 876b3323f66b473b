package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/itops/asset-tracker/internal/core/domain"
	"github.com/itops/asset-tracker/internal/core/ports"
)

const sessionTokenBytes = 32

// SessionService binds opaque random tokens to user ids. The token carries no
// identity or role data; CurrentUser re-reads the user record on every call
// so a role change takes effect on the next request.
type SessionService struct {
	store ports.SessionStore
	users ports.UserRepository
	ttl   time.Duration
}

func NewSessionService(store ports.SessionStore, users ports.UserRepository, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionService{store: store, users: users, ttl: ttl}
}

// Start creates a session for user and returns its token. Call only after
// credential verification has succeeded.
func (s *SessionService) Start(ctx context.Context, user *domain.User) (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	token := hex.EncodeToString(buf)

	if err := s.store.Save(ctx, token, user.ID, s.ttl); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return token, nil
}

// CurrentUser resolves token to its user, or domain.ErrUnauthorized.
func (s *SessionService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}

	userID, err := s.store.Find(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("find session: %w", err)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Session outlived the user record.
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("resolve session user: %w", err)
	}
	return user, nil
}

// End invalidates token immediately. Idempotent.
func (s *SessionService) End(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.store.Delete(ctx, token)
}
