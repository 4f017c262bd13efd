package ports

import (
	"context"

	"github.com/cabeleireiro/agenda-api/internal/core/domain"
)

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	// Create inserts the appointment and returns the generated id.
	Create(ctx context.Context, a *domain.Appointment) (int64, error)
	// List returns every appointment ordered by id.
	List(ctx context.Context) ([]domain.Appointment, error)
	FindByID(ctx context.Context, id int64) (*domain.Appointment, error)
	// FindOwnerCPF joins appointment and client and returns the client's CPF.
	FindOwnerCPF(ctx context.Context, id int64) (string, error)
	// Update reads the row, lets mutate change it, and writes every column
	// back, all inside one transaction. It returns the row as written.
	Update(ctx context.Context, id int64, mutate func(*domain.Appointment)) (*domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
}
