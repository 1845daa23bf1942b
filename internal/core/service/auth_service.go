package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/tokengate/auth-service/internal/core/domain"
	"github.com/tokengate/auth-service/internal/core/ports"
)

// LoginLimiter throttles repeated failed logins per username. Implementations
// fail open: a limiter error must never block a legitimate login.
type LoginLimiter interface {
	TooManyAttempts(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// NopLimiter disables login throttling. Used when no Redis is configured.
type NopLimiter struct{}

func (NopLimiter) TooManyAttempts(context.Context, string) (bool, error) { return false, nil }
func (NopLimiter) RecordFailure(context.Context, string) error           { return nil }
func (NopLimiter) Reset(context.Context, string) error                   { return nil }

// AuditRecorder accepts audit events for asynchronous processing.
type AuditRecorder interface {
	Enqueue(event domain.AuditEvent)
}

// NopRecorder discards audit events.
type NopRecorder struct{}

func (NopRecorder) Enqueue(domain.AuditEvent) {}

// AuthService implements signup and login on top of the credential store,
// the password hasher, and the token service.
type AuthService struct {
	repo    ports.UserRepository
	hasher  ports.PasswordHasher
	tokens  ports.TokenService
	limiter LoginLimiter
	audit   AuditRecorder
	log     zerolog.Logger
}

func NewAuthService(
	repo ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	limiter LoginLimiter,
	audit AuditRecorder,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		repo:    repo,
		hasher:  hasher,
		tokens:  tokens,
		limiter: limiter,
		audit:   audit,
		log:     log,
	}
}

// Signup registers a new user. The plaintext password is hashed immediately
// and never stored or logged.
func (s *AuthService) Signup(ctx context.Context, username, password, role string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	parsedRole, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         parsedRole,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			s.audit.Enqueue(domain.AuditEvent{
				Username:  username,
				Action:    domain.AuditSignup,
				Reason:    "duplicate_username",
				Timestamp: time.Now().UTC(),
			})
		}
		return nil, err
	}

	s.audit.Enqueue(domain.AuditEvent{
		Username:  username,
		Action:    domain.AuditSignup,
		Success:   true,
		Timestamp: time.Now().UTC(),
	})
	return created, nil
}

// Login verifies credentials and issues a session token. Unknown usernames
// and wrong passwords both surface as ErrInvalidCredentials so the response
// does not reveal which half was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	locked, err := s.limiter.TooManyAttempts(ctx, username)
	if err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("login limiter check failed, allowing attempt")
	} else if locked {
		return "", nil, domain.ErrTooManyAttempts
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, username, "unknown_username")
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.recordFailure(ctx, username, "wrong_password")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username, user.Role)
	if err != nil {
		return "", nil, err
	}

	if err := s.limiter.Reset(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to reset login failure counter")
	}
	s.audit.Enqueue(domain.AuditEvent{
		Username:  username,
		Action:    domain.AuditLogin,
		Success:   true,
		Timestamp: time.Now().UTC(),
	})

	return token, user, nil
}

func (s *AuthService) recordFailure(ctx context.Context, username, reason string) {
	if err := s.limiter.RecordFailure(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to record login failure")
	}
	s.audit.Enqueue(domain.AuditEvent{
		Username:  username,
		Action:    domain.AuditLogin,
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	})
}
