package ports

import (
	"context"

	"github.com/tokengate/auth-service/internal/core/domain"
)

type AuthService interface {
	Signup(ctx context.Context, username, password, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
