package domain

import (
	"errors"
	"time"
)

// Role is the closed set of privilege levels a user can hold.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidRole = errors.New("invalid role")
var ErrTooManyAttempts = errors.New("too many failed login attempts")

// ParseRole maps a string onto the Role set, rejecting anything outside it.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin, RoleSuperadmin:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// User models a registered account. Records are created at signup and never
// mutated or deleted afterwards.
type User struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
