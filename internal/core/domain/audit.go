package domain

import "time"

// AuditAction names the kind of security-relevant operation being recorded.
type AuditAction string

const (
	AuditSignup AuditAction = "signup"
	AuditLogin  AuditAction = "login"
)

// AuditEvent is one entry in the security audit trail.
type AuditEvent struct {
	Username  string
	Action    AuditAction
	Success   bool
	Reason    string // short failure cause, empty on success
	Timestamp time.Time
}
