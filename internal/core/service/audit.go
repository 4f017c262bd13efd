package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/cabeleireiro/agenda-api/internal/core/domain"
	"github.com/cabeleireiro/agenda-api/internal/core/ports"
	"github.com/cabeleireiro/agenda-api/internal/pkg/metrics"
	"github.com/cabeleireiro/agenda-api/internal/pkg/reqctx"
	"github.com/cabeleireiro/agenda-api/pkg/logger"
)

// recordAudit hands an event to the recorder. A nil recorder disables auditing.
func recordAudit(ctx context.Context, rec ports.AuditRecorder, entity, id string, action domain.AuditAction, fields []string) {
	if rec == nil {
		return
	}
	rec.Record(domain.AuditEvent{
		Entity:     entity,
		EntityID:   id,
		Action:     action,
		Fields:     fields,
		RequestID:  reqctx.RequestID(ctx),
		OccurredAt: time.Now().UTC(),
	})
}

// expected reports whether err is a domain outcome the caller maps to a 4xx.
func expected(err error) bool {
	for _, target := range []error{
		domain.ErrAppointmentNotFound,
		domain.ErrClientNotFound,
		domain.ErrClientExists,
		domain.ErrEmailInUse,
		domain.ErrClientHasAppointments,
		domain.ErrUnknownClient,
		domain.ErrInvalidInput,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// logStoreError counts and logs store failures that are not expected outcomes.
func logStoreError(ctx context.Context, log zerolog.Logger, err error, op string) {
	if expected(err) {
		return
	}
	kind := "query"
	if errors.Is(err, domain.ErrStoreUnavailable) {
		kind = "unavailable"
	}
	metrics.StoreErrorsTotal.WithLabelValues(kind).Inc()
	l := logger.Ctx(ctx, log)
	l.Error().Err(err).Str("op", op).Str("kind", kind).Msg("store operation failed")
}

// HistoryService reads audit trails.
type HistoryService struct {
	repo ports.AuditRepository
}

// NewHistoryService returns a HistoryService. A nil repo makes every call
// fail with domain.ErrAuditUnavailable.
func NewHistoryService(repo ports.AuditRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

func (s *HistoryService) History(ctx context.Context, entity, entityID string) ([]domain.AuditEvent, error) {
	if s.repo == nil {
		return nil, domain.ErrAuditUnavailable
	}
	events, err := s.repo.FindByEntity(ctx, entity, entityID)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []domain.AuditEvent{}
	}
	return events, nil
}
