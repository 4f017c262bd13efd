package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/cabeleireiro/agenda-api/internal/core/domain"
	"github.com/cabeleireiro/agenda-api/internal/core/ports"
)

type stubClientRepo struct {
	rows       map[string]domain.Client
	referenced map[string]bool // CPFs that still have appointments
	err        error
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{rows: make(map[string]domain.Client), referenced: make(map[string]bool)}
}

func (r *stubClientRepo) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	if r.err != nil {
		return nil, r.err
	}
	if _, exists := r.rows[c.CPF]; exists {
		return nil, domain.ErrClientExists
	}
	for _, other := range r.rows {
		if other.Email == c.Email {
			return nil, domain.ErrClientExists
		}
	}
	r.rows[c.CPF] = *c
	clone := *c
	return &clone, nil
}

func (r *stubClientRepo) FindByCPF(_ context.Context, cpf string) (*domain.Client, error) {
	if r.err != nil {
		return nil, r.err
	}
	c, ok := r.rows[cpf]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return &c, nil
}

func (r *stubClientRepo) Replace(_ context.Context, c *domain.Client) (*domain.Client, error) {
	if r.err != nil {
		return nil, r.err
	}
	if _, ok := r.rows[c.CPF]; !ok {
		return nil, domain.ErrClientNotFound
	}
	r.rows[c.CPF] = *c
	clone := *c
	return &clone, nil
}

func (r *stubClientRepo) Delete(_ context.Context, cpf string) (*domain.Client, error) {
	if r.err != nil {
		return nil, r.err
	}
	c, ok := r.rows[cpf]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	if r.referenced[cpf] {
		return nil, domain.ErrClientHasAppointments
	}
	delete(r.rows, cpf)
	return &c, nil
}

func clientInput(t *testing.T) ports.ClientInput {
	return ports.ClientInput{
		CPF:       testCPF,
		Name:      "Maria Silva",
		Phone:     "11999990000",
		Email:     "maria@example.com",
		Password:  "segredo123",
		BirthDate: mustDate(t, "1990-03-15"),
		Gender:    "F",
	}
}

func TestClientService_Create_HashesPassword(t *testing.T) {
	repo := newStubClientRepo()
	rec := &stubRecorder{}
	svc := NewClientService(repo, rec, discardLogger)

	c, err := svc.Create(context.Background(), clientInput(t))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.PasswordHash == "segredo123" {
		t.Fatal("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.rows[testCPF].PasswordHash), []byte("segredo123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if len(rec.events) != 1 || rec.events[0].Entity != domain.EntityClient || rec.events[0].EntityID != testCPF {
		t.Errorf("unexpected audit events: %+v", rec.events)
	}
}

func TestClientService_Create_Duplicate(t *testing.T) {
	svc := NewClientService(newStubClientRepo(), nil, discardLogger)

	if _, err := svc.Create(context.Background(), clientInput(t)); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(context.Background(), clientInput(t)); !errors.Is(err, domain.ErrClientExists) {
		t.Fatalf("expected ErrClientExists, got %v", err)
	}
}

func TestClientService_Create_PasswordTooLong(t *testing.T) {
	svc := NewClientService(newStubClientRepo(), nil, discardLogger)

	in := clientInput(t)
	in.Password = strings.Repeat("x", 73)
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestClientService_Replace(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, nil, discardLogger)
	if _, err := svc.Create(context.Background(), clientInput(t)); err != nil {
		t.Fatalf("create: %v", err)
	}

	in := clientInput(t)
	in.Name = "Maria Souza"
	in.Password = "nova-senha"
	got, err := svc.Replace(context.Background(), in)
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if got.Name != "Maria Souza" {
		t.Errorf("name not replaced: %q", got.Name)
	}
	if bcrypt.CompareHashAndPassword([]byte(repo.rows[testCPF].PasswordHash), []byte("nova-senha")) != nil {
		t.Error("password not replaced")
	}
}

func TestClientService_Replace_NotFound(t *testing.T) {
	svc := NewClientService(newStubClientRepo(), nil, discardLogger)

	if _, err := svc.Replace(context.Background(), clientInput(t)); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientService_Delete(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, nil, discardLogger)
	_, _ = svc.Create(context.Background(), clientInput(t))

	deleted, err := svc.Delete(context.Background(), testCPF)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.CPF != testCPF {
		t.Errorf("unexpected deleted row: %+v", deleted)
	}
	if _, err := svc.Get(context.Background(), testCPF); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound after delete, got %v", err)
	}
}

func TestClientService_Delete_Referenced(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, nil, discardLogger)
	_, _ = svc.Create(context.Background(), clientInput(t))
	repo.referenced[testCPF] = true

	if _, err := svc.Delete(context.Background(), testCPF); !errors.Is(err, domain.ErrClientHasAppointments) {
		t.Fatalf("expected ErrClientHasAppointments, got %v", err)
	}
	if _, ok := repo.rows[testCPF]; !ok {
		t.Error("referenced client must not be deleted")
	}
}
