package ports

import (
	"context"

	"github.com/itops/asset-tracker/internal/core/domain"
)

// AuthService implements the registration and login workflows.
type AuthService interface {
	// Register validates the inputs in fail-fast order (taken username,
	// username==password, confirmation mismatch, weak password) and persists
	// a new user with the regular role. It never logs the caller in.
	Register(ctx context.Context, username, password, confirm string) (*domain.User, error)
	// Login rate-limits by clientAddr, then verifies credentials and starts a
	// session. Unknown usernames and wrong passwords are indistinguishable in
	// the returned error.
	Login(ctx context.Context, username, password, clientAddr string) (string, *domain.User, error)
	// Logout ends the session bound to token; ending an unknown or already
	// ended session is a no-op.
	Logout(ctx context.Context, token string) error
}

// SessionManager binds opaque tokens to user identities.
type SessionManager interface {
	Start(ctx context.Context, user *domain.User) (string, error)
	// CurrentUser resolves token to a user, re-reading the record (and so the
	// role) from the user repository on every call. Unknown or expired tokens
	// yield domain.ErrUnauthorized.
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
	End(ctx context.Context, token string) error
}
