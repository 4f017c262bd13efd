package ports

import (
	"context"

	"github.com/cabeleireiro/agenda-api/internal/core/domain"
)

// ClientInput carries every client field. Password is plaintext and is
// hashed by the service before it reaches the repository.
type ClientInput struct {
	CPF       string
	Name      string
	Phone     string
	Email     string
	Password  string
	BirthDate domain.Date
	Gender    string
}

// ClientService defines use-case operations for clients.
type ClientService interface {
	Get(ctx context.Context, cpf string) (*domain.Client, error)
	Create(ctx context.Context, input ClientInput) (*domain.Client, error)
	// Replace overwrites the client identified by input.CPF.
	Replace(ctx context.Context, input ClientInput) (*domain.Client, error)
	Delete(ctx context.Context, cpf string) (*domain.Client, error)
}

// HistoryService reads the audit trail of a resource.
type HistoryService interface {
	History(ctx context.Context, entity, entityID string) ([]domain.AuditEvent, error)
}
