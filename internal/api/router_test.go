package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/cabeleireiro/agenda-api/internal/core/domain"
	"github.com/cabeleireiro/agenda-api/internal/core/ports"
	"github.com/cabeleireiro/agenda-api/internal/core/service"
	"github.com/cabeleireiro/agenda-api/internal/infrastructure/db/postgres"
)

// failingAppointments returns err from every operation.
type failingAppointments struct{ err error }

func (f failingAppointments) GetOwner(context.Context, int64) (string, error) { return "", f.err }
func (f failingAppointments) Create(context.Context, ports.CreateAppointmentInput) (*ports.CreateAppointmentResult, error) {
	return nil, f.err
}
func (f failingAppointments) List(context.Context) ([]domain.Appointment, error) { return nil, f.err }
func (f failingAppointments) Get(context.Context, int64) (*domain.Appointment, error) { return nil, f.err }
func (f failingAppointments) Update(context.Context, int64, domain.AppointmentPatch) error { return f.err }
func (f failingAppointments) Delete(context.Context, int64) error { return f.err }

type failingClients struct{ err error }

func (f failingClients) Get(context.Context, string) (*domain.Client, error) { return nil, f.err }
func (f failingClients) Create(context.Context, ports.ClientInput) (*domain.Client, error) { return nil, f.err }
func (f failingClients) Replace(context.Context, ports.ClientInput) (*domain.Client, error) {
	return nil, f.err
}
func (f failingClients) Delete(context.Context, string) (*domain.Client, error) { return nil, f.err }

const (
	appointmentBody = `{"cpf":"123.456.789-00","hora":"14:00","data":"2024-06-01","valor":50,"servico":"corte"}`
	clientBody      = `{"Nome":"Maria","CPF":"123.456.789-00","Telefone":"11999990000","Email":"maria@example.com","Senha":"segredo","Data_Nascimento":"1990-03-15","Genero":"F"}`
)

type route struct {
	method, path, body string
}

var resourceRoutes = []route{
	{http.MethodGet, "/agendamentos/1/usuario", ""},
	{http.MethodPost, "/agendamentos", appointmentBody},
	{http.MethodGet, "/agendamentos", ""},
	{http.MethodGet, "/agendamentos/1", ""},
	{http.MethodPut, "/agendamentos/1", `{"servico":"barba"}`},
	{http.MethodDelete, "/agendamentos/1", ""},
	{http.MethodGet, "/usuario/123.456.789-00", ""},
	{http.MethodPost, "/usuario", clientBody},
	{http.MethodPut, "/usuario/123.456.789-00", clientBody},
	{http.MethodDelete, "/usuario/123.456.789-00", ""},
}

func serve(t *testing.T, h http.Handler, r route) (int, string) {
	t.Helper()
	req := httptest.NewRequest(r.method, r.path, strings.NewReader(r.body))
	if r.body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	msg, _ := resp["error"].(string)
	return rec.Code, msg
}

func TestRouter_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
		msg  string
	}{
		{domain.ErrAppointmentNotFound, http.StatusNotFound, "appointment not found"},
		{domain.ErrClientNotFound, http.StatusNotFound, "client not found"},
		{domain.ErrClientExists, http.StatusConflict, "client already exists"},
		{domain.ErrEmailInUse, http.StatusConflict, "email already in use"},
		{domain.ErrIdempotencyInProgress, http.StatusConflict, "request with this idempotency key is in progress"},
		{domain.ErrClientHasAppointments, http.StatusConflict, "client has appointments"},
		{domain.ErrUnknownClient, http.StatusUnprocessableEntity, "client does not exist"},
		{domain.ErrNoFieldsToUpdate, http.StatusBadRequest, "no fields to update"},
		{fmt.Errorf("%w: postgres down", domain.ErrStoreUnavailable), http.StatusInternalServerError, "database connection error"},
		{errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			e := NewRouter(Deps{
				Appointments: failingAppointments{tt.err},
				Clients:      failingClients{tt.err},
				History:      service.NewHistoryService(nil),
				Logger:       zerolog.Nop(),
			})
			code, msg := serve(t, e, route{http.MethodGet, "/agendamentos/1", ""})
			if code != tt.code || msg != tt.msg {
				t.Fatalf("got %d %q, want %d %q", code, msg, tt.code, tt.msg)
			}
		})
	}
}

func TestRouter_IDOutsideSerialRangeIsNotFound(t *testing.T) {
	e := NewRouter(Deps{
		Appointments: failingAppointments{errors.New("store must not be reached")},
		Clients:      failingClients{errors.New("store must not be reached")},
		History:      service.NewHistoryService(nil),
		Logger:       zerolog.Nop(),
	})

	for _, r := range []route{
		{http.MethodGet, "/agendamentos/2147483648", ""},
		{http.MethodGet, "/agendamentos/2147483648/usuario", ""},
		{http.MethodDelete, "/agendamentos/2147483648", ""},
	} {
		code, msg := serve(t, e, r)
		if code != http.StatusNotFound || msg != "appointment not found" {
			t.Errorf("%s %s: got %d %q, want 404", r.method, r.path, code, msg)
		}
	}
}

func TestRouter_ValidationBeforeStore(t *testing.T) {
	e := NewRouter(Deps{
		Appointments: failingAppointments{errors.New("store must not be reached")},
		Clients:      failingClients{errors.New("store must not be reached")},
		History:      service.NewHistoryService(nil),
		Logger:       zerolog.Nop(),
	})

	for _, r := range []route{
		{http.MethodPost, "/agendamentos", `{"cpf":"123.456.789-00"}`},
		{http.MethodGet, "/agendamentos/abc", ""},
		{http.MethodPost, "/usuario", `{"Nome":"Maria"}`},
		{http.MethodPut, "/usuario/123.456.789-00", `{"Nome":"Maria"}`},
		{http.MethodPost, "/agendamentos", `{broken`},
	} {
		if code, msg := serve(t, e, r); code != http.StatusBadRequest {
			t.Errorf("%s %s: expected 400, got %d %q", r.method, r.path, code, msg)
		}
	}
}

func TestRouter_HistoryDisabled(t *testing.T) {
	e := NewRouter(Deps{
		Appointments: failingAppointments{},
		Clients:      failingClients{},
		History:      service.NewHistoryService(nil),
		Logger:       zerolog.Nop(),
	})

	for _, path := range []string{"/agendamentos/1/historico", "/usuario/123.456.789-00/historico"} {
		if code, msg := serve(t, e, route{http.MethodGet, path, ""}); code != http.StatusServiceUnavailable || msg != "audit log unavailable" {
			t.Errorf("%s: got %d %q", path, code, msg)
		}
	}
}

func TestRouter_RequestIDHeader(t *testing.T) {
	e := NewRouter(Deps{
		Appointments: failingAppointments{},
		Clients:      failingClients{},
		History:      service.NewHistoryService(nil),
		Logger:       zerolog.Nop(),
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("expected a generated X-Request-Id")
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	e := NewRouter(Deps{
		Appointments: failingAppointments{},
		Clients:      failingClients{},
		History:      service.NewHistoryService(nil),
		Logger:       zerolog.Nop(),
	})
	serve(t, e, route{http.MethodGet, "/health", ""})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "agenda_http_requests_total") {
		t.Fatalf("metrics not exposed: %d", rec.Code)
	}
}

// Every resource endpoint reports the same error when PostgreSQL cannot be
// reached.
func TestRouter_StoreUnreachable(t *testing.T) {
	provider, err := postgres.Connect(context.Background(), postgres.Config{
		Host:         "127.0.0.1",
		Port:         1,
		Database:     "Cabeleireiro",
		User:         "postgres",
		QueryTimeout: 2 * time.Second,
	})
	if err != nil {
		t.Fatalf("connect must not fail eagerly: %v", err)
	}
	t.Cleanup(provider.Close)

	log := zerolog.Nop()
	e := NewRouter(Deps{
		Appointments: service.NewAppointmentService(postgres.NewAppointmentRepository(provider), nil, nil, log),
		Clients:      service.NewClientService(postgres.NewClientRepository(provider), nil, log),
		History:      service.NewHistoryService(nil),
		Logger:       log,
	})

	for _, r := range resourceRoutes {
		code, msg := serve(t, e, r)
		if code != http.StatusInternalServerError || msg != "database connection error" {
			t.Errorf("%s %s: got %d %q", r.method, r.path, code, msg)
		}
	}
}
