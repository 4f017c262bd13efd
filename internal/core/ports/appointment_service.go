package ports

import (
	"context"

	"github.com/cabeleireiro/agenda-api/internal/core/domain"
)

// CreateAppointmentInput carries a fully parsed new appointment.
type CreateAppointmentInput struct {
	ClientCPF      string
	Time           domain.TimeOfDay
	Date           domain.Date
	Amount         domain.Amount
	Service        string
	IdempotencyKey string
}

// CreateAppointmentResult is returned by the service after creating an appointment.
type CreateAppointmentResult struct {
	ID int64
	// AlreadyExisted is true when the Idempotency-Key matched an earlier create.
	AlreadyExisted bool
}

// AppointmentService defines use-case operations for appointments.
type AppointmentService interface {
	GetOwner(ctx context.Context, id int64) (string, error)
	Create(ctx context.Context, input CreateAppointmentInput) (*CreateAppointmentResult, error)
	List(ctx context.Context) ([]domain.Appointment, error)
	Get(ctx context.Context, id int64) (*domain.Appointment, error)
	Update(ctx context.Context, id int64, patch domain.AppointmentPatch) error
	Delete(ctx context.Context, id int64) error
}
