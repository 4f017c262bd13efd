package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cabeleireiro/agenda-api/internal/core/domain"
	"github.com/cabeleireiro/agenda-api/internal/core/ports"
	"github.com/cabeleireiro/agenda-api/internal/pkg/metrics"
)

// ClientService implements client registration and maintenance. Passwords
// are stored as bcrypt hashes.
type ClientService struct {
	repo     ports.ClientRepository
	audit    ports.AuditRecorder
	logger   zerolog.Logger
	hashCost int
}

func NewClientService(repo ports.ClientRepository, audit ports.AuditRecorder, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, audit: audit, logger: logger, hashCost: bcrypt.DefaultCost}
}

func (s *ClientService) Get(ctx context.Context, cpf string) (*domain.Client, error) {
	c, err := s.repo.FindByCPF(ctx, cpf)
	if err != nil {
		logStoreError(ctx, s.logger, err, "get client")
		return nil, err
	}
	return c, nil
}

func (s *ClientService) Create(ctx context.Context, input ports.ClientInput) (*domain.Client, error) {
	c, err := s.toClient(input)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		logStoreError(ctx, s.logger, err, "create client")
		return nil, err
	}

	metrics.ClientsCreatedTotal.Inc()
	recordAudit(ctx, s.audit, domain.EntityClient, created.CPF, domain.AuditCreated, nil)
	s.logger.Info().Str("cpf", created.CPF).Msg("client created")
	return created, nil
}

// Replace overwrites every field of an existing client, password included.
func (s *ClientService) Replace(ctx context.Context, input ports.ClientInput) (*domain.Client, error) {
	c, err := s.toClient(input)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Replace(ctx, c)
	if err != nil {
		logStoreError(ctx, s.logger, err, "replace client")
		return nil, err
	}

	recordAudit(ctx, s.audit, domain.EntityClient, updated.CPF, domain.AuditUpdated,
		[]string{"Nome", "Telefone", "Email", "Senha", "Data_Nascimento", "Genero"})
	s.logger.Info().Str("cpf", updated.CPF).Msg("client updated")
	return updated, nil
}

func (s *ClientService) Delete(ctx context.Context, cpf string) (*domain.Client, error) {
	deleted, err := s.repo.Delete(ctx, cpf)
	if err != nil {
		logStoreError(ctx, s.logger, err, "delete client")
		return nil, err
	}

	recordAudit(ctx, s.audit, domain.EntityClient, deleted.CPF, domain.AuditDeleted, nil)
	s.logger.Info().Str("cpf", deleted.CPF).Msg("client deleted")
	return deleted, nil
}

func (s *ClientService) toClient(input ports.ClientInput) (*domain.Client, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: password longer than 72 bytes", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return &domain.Client{
		CPF:          input.CPF,
		Name:         input.Name,
		Phone:        input.Phone,
		Email:        input.Email,
		PasswordHash: string(hash),
		BirthDate:    input.BirthDate,
		Gender:       input.Gender,
	}, nil
}
