package ports

import (
	"context"

	"github.com/itops/asset-tracker/internal/core/domain"
)

// UserRepository persists user identities. The storage layer enforces
// username uniqueness (unique index); Create maps a constraint violation to
// domain.ErrUsernameTaken. The application-level pre-check in the
// registration workflow is only a fast path.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
