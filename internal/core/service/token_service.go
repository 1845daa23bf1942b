package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tokengate/auth-service/internal/core/domain"
)

const defaultTokenTTL = 30 * time.Minute

// ErrMissingSecret is a configuration fault: the service refuses to construct
// without a signing secret rather than issuing unverifiable tokens.
var ErrMissingSecret = errors.New("token service: signing secret is empty")

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTTokenService issues and validates HS256-signed session tokens. The
// secret is read-only after construction; rotating it invalidates every
// outstanding token, which is the accepted operational trade-off of keeping
// tokens stateless.
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTTokenService builds a token service signing with the given symmetric
// secret. A non-positive ttl falls back to 30 minutes.
func NewJWTTokenService(secret string, ttl time.Duration) (*JWTTokenService, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTTokenService{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token carrying {sub, role, iat, exp}. The signature covers
// the full claim set, so tampering with any field invalidates the token.
func (s *JWTTokenService) Issue(username string, role domain.Role) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate checks signature, signing algorithm, expiry, and required claims.
// All failures collapse into domain.ErrInvalidToken so callers cannot
// distinguish an expired token from a forged one.
func (s *JWTTokenService) Validate(token string) (*domain.Claims, error) {
	parsed := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(token, parsed, func(t *jwt.Token) (interface{}, error) {
		// Pin the algorithm: a token declaring anything but HS256 is rejected
		// before its signature is even checked.
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	if parsed.Subject == "" || parsed.ExpiresAt == nil {
		return nil, domain.ErrInvalidToken
	}
	role, err := domain.ParseRole(parsed.Role)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	claims := &domain.Claims{
		Subject:   parsed.Subject,
		Role:      role,
		ExpiresAt: parsed.ExpiresAt.Time,
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Time
	}
	return claims, nil
}
