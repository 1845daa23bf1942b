package ports

import (
	"context"

	"github.com/tokengate/auth-service/internal/core/domain"
)

// AuditService processes one audit event: enrich, persist, log.
type AuditService interface {
	Process(ctx context.Context, event domain.AuditEvent) error
}

// AuditRepository persists audit events. Implementations may be durable
// (MongoDB) or absent entirely, in which case events are only logged.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}
