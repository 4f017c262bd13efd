package ports

import (
	"context"

	"github.com/cabeleireiro/agenda-api/internal/core/domain"
)

// ClientRepository defines persistence operations for clients. Every write
// returns the row as stored.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	FindByCPF(ctx context.Context, cpf string) (*domain.Client, error)
	// Replace overwrites every column of the client identified by c.CPF.
	Replace(ctx context.Context, c *domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, cpf string) (*domain.Client, error)
}
