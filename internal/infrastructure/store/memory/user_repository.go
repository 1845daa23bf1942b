// Package memory provides the in-process credential store. It is the default
// backend; the MongoDB repository can be substituted without touching auth
// logic because both satisfy ports.UserRepository.
package memory

import (
	"context"
	"sync"

	"github.com/tokengate/auth-service/internal/core/domain"
)

// UserRepository is a mutex-guarded map from username to user record. The
// lock makes the existence-check-then-insert of Create atomic, so concurrent
// signups for the same username cannot both succeed.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]domain.User)}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}

	r.users[user.Username] = *user
	created := *user
	return &created, nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	found := user
	return &found, nil
}
