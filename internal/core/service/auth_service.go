package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/itops/asset-tracker/internal/core/domain"
	"github.com/itops/asset-tracker/internal/core/ports"
	"github.com/itops/asset-tracker/internal/security"
)

// AuthService implements registration and login.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionManager
	limiter  ports.LoginLimiter
	hasher   *security.Hasher
	policy   *security.PasswordPolicy
	audit    ports.AuditRecorder
	log      zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	sessions ports.SessionManager,
	limiter ports.LoginLimiter,
	hasher *security.Hasher,
	policy *security.PasswordPolicy,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *AuthService {
	if policy == nil {
		policy = security.DefaultPasswordPolicy()
	}
	return &AuthService{
		users:    users,
		sessions: sessions,
		limiter:  limiter,
		hasher:   hasher,
		policy:   policy,
		audit:    audit,
		log:      log,
	}
}

// Register validates the inputs in order and persists a new regular user.
// Only the first failed check is surfaced.
func (s *AuthService) Register(ctx context.Context, username, password, confirm string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	// Fast-path duplicate check. The unique index on username remains the
	// authoritative guard; Create below maps its violation to the same error.
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		s.rejectRegistration(username, "username_taken")
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	if username == password {
		s.rejectRegistration(username, "credentials_not_distinct")
		return nil, domain.ErrCredentialsNotDistinct
	}
	if password != confirm {
		s.rejectRegistration(username, "confirmation_mismatch")
		return nil, domain.ErrConfirmationMismatch
	}
	if v := s.policy.Validate(password); v != nil {
		s.rejectRegistration(username, v.Code)
		return nil, fmt.Errorf("%w: %s", domain.ErrWeakPassword, v.Message)
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: digest,
		Role:         domain.RoleRegular,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			s.rejectRegistration(username, "username_taken")
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info().Str("username", created.Username).Msg("user registered")
	s.audit.Record(domain.AuditEvent{Kind: domain.AuditRegistered, Username: created.Username})
	return created, nil
}

// Login enforces the rate limit, verifies credentials, and starts a session.
func (s *AuthService) Login(ctx context.Context, username, password, clientAddr string) (string, *domain.User, error) {
	allowed, err := s.limiter.Allow(ctx, clientAddr)
	if err != nil {
		return "", nil, fmt.Errorf("rate limit check: %w", err)
	}
	if !allowed {
		s.log.Warn().Str("username", username).Str("client_addr", clientAddr).Msg("login rate limited")
		s.audit.Record(domain.AuditEvent{
			Kind:       domain.AuditLoginRateLimited,
			Username:   username,
			ClientAddr: clientAddr,
		})
		return "", nil, domain.ErrRateLimited
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Verify against a dummy digest so a lookup miss takes about as
			// long as a password mismatch.
			s.hasher.Verify(password, security.DummyDigest)
			s.recordLoginFailure(username, clientAddr)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.recordLoginFailure(username, clientAddr)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.sessions.Start(ctx, user)
	if err != nil {
		return "", nil, fmt.Errorf("start session: %w", err)
	}

	s.log.Info().Str("username", user.Username).Msg("user logged in")
	s.audit.Record(domain.AuditEvent{
		Kind:       domain.AuditLoginSuccess,
		Username:   user.Username,
		ClientAddr: clientAddr,
	})
	return token, user, nil
}

// Logout ends the session bound to token. Ending an already ended session is
// a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	username := ""
	if user, err := s.sessions.CurrentUser(ctx, token); err == nil {
		username = user.Username
	}

	if err := s.sessions.End(ctx, token); err != nil {
		return fmt.Errorf("end session: %w", err)
	}

	if username != "" {
		s.log.Info().Str("username", username).Msg("user logged out")
		s.audit.Record(domain.AuditEvent{Kind: domain.AuditLogout, Username: username})
	}
	return nil
}

func (s *AuthService) rejectRegistration(username, reason string) {
	s.log.Warn().Str("username", username).Str("reason", reason).Msg("registration rejected")
	s.audit.Record(domain.AuditEvent{
		Kind:     domain.AuditRegisterRejected,
		Username: username,
		Detail:   reason,
	})
}

func (s *AuthService) recordLoginFailure(username, clientAddr string) {
	s.log.Warn().Str("username", username).Str("client_addr", clientAddr).Msg("invalid login attempt")
	s.audit.Record(domain.AuditEvent{
		Kind:       domain.AuditLoginFailure,
		Username:   username,
		ClientAddr: clientAddr,
	})
}
