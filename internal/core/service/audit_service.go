package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tokengate/auth-service/internal/core/domain"
	"github.com/tokengate/auth-service/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository // may be nil; events are then only logged
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that logs every event and, when a
// repository is provided, persists it.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process logs and persists a single audit event.
func (s *auditService) Process(ctx context.Context, event domain.AuditEvent) error {
	evt := s.log.Info()
	if !event.Success {
		evt = s.log.Warn()
	}
	evt.Str("username", event.Username).
		Str("action", string(event.Action)).
		Bool("success", event.Success).
		Str("reason", event.Reason).
		Msg("audit event")

	if s.repo == nil {
		return nil
	}
	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("persist audit event: %w", err)
	}
	return nil
}
