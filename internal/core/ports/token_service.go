package ports

import "github.com/tokengate/auth-service/internal/core/domain"

// TokenService issues and validates signed session tokens. Both operations
// are stateless and safe for concurrent use.
type TokenService interface {
	// Issue signs a token asserting {subject, role} with the configured TTL.
	Issue(username string, role domain.Role) (string, error)
	// Validate verifies signature, algorithm, expiry, and required claims.
	// Every failure mode maps to domain.ErrInvalidToken; callers must not be
	// able to tell an expired token from a forged one.
	Validate(token string) (*domain.Claims, error)
}

// PasswordHasher produces and checks salted one-way password digests. The
// digest embeds its own salt and parameters, so Verify needs no extra state.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}
