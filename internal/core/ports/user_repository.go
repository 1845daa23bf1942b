package ports

import (
	"context"

	"github.com/tokengate/auth-service/internal/core/domain"
)

// UserRepository defines the interface for credential persistence. Username
// uniqueness is a case-sensitive exact match, enforced at creation.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
