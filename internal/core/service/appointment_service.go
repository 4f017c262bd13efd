package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/cabeleireiro/agenda-api/internal/core/domain"
	"github.com/cabeleireiro/agenda-api/internal/core/ports"
	"github.com/cabeleireiro/agenda-api/internal/pkg/metrics"
)

type AppointmentService struct {
	repo   ports.AppointmentRepository
	idem   ports.IdempotencyStore
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

// NewAppointmentService wires the appointment use cases. idem and audit are
// optional; pass nil to disable idempotent creates or auditing.
func NewAppointmentService(repo ports.AppointmentRepository, idem ports.IdempotencyStore, audit ports.AuditRecorder, logger zerolog.Logger) *AppointmentService {
	return &AppointmentService{repo: repo, idem: idem, audit: audit, logger: logger}
}

func (s *AppointmentService) GetOwner(ctx context.Context, id int64) (string, error) {
	cpf, err := s.repo.FindOwnerCPF(ctx, id)
	if err != nil {
		logStoreError(ctx, s.logger, err, "appointment owner")
		return "", err
	}
	return cpf, nil
}

// Create inserts a new appointment. With an idempotency key, the key is
// reserved before the insert so a replay returns the first id and a
// concurrent duplicate is refused with domain.ErrIdempotencyInProgress.
func (s *AppointmentService) Create(ctx context.Context, input ports.CreateAppointmentInput) (*ports.CreateAppointmentResult, error) {
	key := input.IdempotencyKey
	reserved := false

	if key != "" && s.idem != nil {
		id, done, err := s.idem.Reserve(ctx, key)
		switch {
		case errors.Is(err, domain.ErrIdempotencyInProgress):
			return nil, err
		case err != nil:
			s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency store unavailable, creating without key")
		case done:
			s.logger.Info().Str("idempotency_key", key).Int64("id", id).Msg("idempotent replay")
			metrics.AppointmentsCreatedTotal.WithLabelValues("replayed").Inc()
			return &ports.CreateAppointmentResult{ID: id, AlreadyExisted: true}, nil
		default:
			reserved = true
		}
	}

	a := &domain.Appointment{
		ClientCPF: input.ClientCPF,
		Time:      input.Time,
		Date:      input.Date,
		Amount:    input.Amount,
		Service:   input.Service,
	}
	id, err := s.repo.Create(ctx, a)
	if err != nil {
		logStoreError(ctx, s.logger, err, "create appointment")
		if reserved {
			if rerr := s.idem.Release(ctx, key); rerr != nil {
				s.logger.Warn().Err(rerr).Str("idempotency_key", key).Msg("failed to release idempotency key")
			}
		}
		return nil, err
	}
	a.ID = id

	if reserved {
		if err := s.idem.Complete(ctx, key, id); err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("failed to store idempotency key")
		}
	}

	metrics.AppointmentsCreatedTotal.WithLabelValues("created").Inc()
	recordAudit(ctx, s.audit, domain.EntityAppointment, a.AuditKey(), domain.AuditCreated, nil)
	s.logger.Info().Int64("id", id).Str("cpf", a.ClientCPF).Msg("appointment created")

	return &ports.CreateAppointmentResult{ID: id}, nil
}

func (s *AppointmentService) List(ctx context.Context) ([]domain.Appointment, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		logStoreError(ctx, s.logger, err, "list appointments")
		return nil, err
	}
	if out == nil {
		out = []domain.Appointment{}
	}
	return out, nil
}

func (s *AppointmentService) Get(ctx context.Context, id int64) (*domain.Appointment, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		logStoreError(ctx, s.logger, err, "get appointment")
		return nil, err
	}
	return a, nil
}

// Update applies patch on top of the stored row and rewrites the full row.
func (s *AppointmentService) Update(ctx context.Context, id int64, patch domain.AppointmentPatch) error {
	if patch.Empty() {
		return domain.ErrNoFieldsToUpdate
	}

	a, err := s.repo.Update(ctx, id, patch.Apply)
	if err != nil {
		logStoreError(ctx, s.logger, err, "update appointment")
		return err
	}

	recordAudit(ctx, s.audit, domain.EntityAppointment, a.AuditKey(), domain.AuditUpdated, patch.Fields())
	s.logger.Info().Int64("id", id).Strs("fields", patch.Fields()).Msg("appointment updated")
	return nil
}

func (s *AppointmentService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		logStoreError(ctx, s.logger, err, "delete appointment")
		return err
	}

	recordAudit(ctx, s.audit, domain.EntityAppointment, domain.Appointment{ID: id}.AuditKey(), domain.AuditDeleted, nil)
	s.logger.Info().Int64("id", id).Msg("appointment deleted")
	return nil
}
