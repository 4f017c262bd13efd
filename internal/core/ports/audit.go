package ports

import (
	"context"

	"github.com/cabeleireiro/agenda-api/internal/core/domain"
)

// AuditRepository persists and reads the audit trail.
type AuditRepository interface {
	InsertEvent(ctx context.Context, event *domain.AuditEvent) error
	// FindByEntity returns the events of one resource, oldest first.
	FindByEntity(ctx context.Context, entity, entityID string) ([]domain.AuditEvent, error)
}

// AuditRecorder accepts events for asynchronous persistence. Record never
// blocks the caller.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}
