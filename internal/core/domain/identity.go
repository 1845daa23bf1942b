package domain

import (
	"errors"
	"time"
)

var ErrInvalidToken = errors.New("invalid token")
var ErrForbidden = errors.New("access forbidden")

// Claims is the validated content of a session token. The token itself is
// stateless: validity is proven by signature and expiry alone, so a role
// change only takes effect at the next login.
type Claims struct {
	Subject   string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Identity is the authenticated principal for a single request, derived from
// validated claims. It is never persisted.
type Identity struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// HasRole reports whether the identity holds exactly the given role.
func (id Identity) HasRole(role Role) bool {
	return id.Role == role
}
