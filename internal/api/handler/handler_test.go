package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cabeleireiro/agenda-api/internal/core/domain"
	"github.com/cabeleireiro/agenda-api/internal/core/ports"
)

type stubAppointmentService struct {
	getOwnerFn func(ctx context.Context, id int64) (string, error)
	createFn   func(ctx context.Context, in ports.CreateAppointmentInput) (*ports.CreateAppointmentResult, error)
	listFn     func(ctx context.Context) ([]domain.Appointment, error)
	getFn      func(ctx context.Context, id int64) (*domain.Appointment, error)
	updateFn   func(ctx context.Context, id int64, patch domain.AppointmentPatch) error
	deleteFn   func(ctx context.Context, id int64) error
}

func (s *stubAppointmentService) GetOwner(ctx context.Context, id int64) (string, error) {
	return s.getOwnerFn(ctx, id)
}

func (s *stubAppointmentService) Create(ctx context.Context, in ports.CreateAppointmentInput) (*ports.CreateAppointmentResult, error) {
	return s.createFn(ctx, in)
}

func (s *stubAppointmentService) List(ctx context.Context) ([]domain.Appointment, error) {
	return s.listFn(ctx)
}

func (s *stubAppointmentService) Get(ctx context.Context, id int64) (*domain.Appointment, error) {
	return s.getFn(ctx, id)
}

func (s *stubAppointmentService) Update(ctx context.Context, id int64, patch domain.AppointmentPatch) error {
	return s.updateFn(ctx, id, patch)
}

func (s *stubAppointmentService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubClientService struct {
	getFn     func(ctx context.Context, cpf string) (*domain.Client, error)
	createFn  func(ctx context.Context, in ports.ClientInput) (*domain.Client, error)
	replaceFn func(ctx context.Context, in ports.ClientInput) (*domain.Client, error)
	deleteFn  func(ctx context.Context, cpf string) (*domain.Client, error)
}

func (s *stubClientService) Get(ctx context.Context, cpf string) (*domain.Client, error) {
	return s.getFn(ctx, cpf)
}

func (s *stubClientService) Create(ctx context.Context, in ports.ClientInput) (*domain.Client, error) {
	return s.createFn(ctx, in)
}

func (s *stubClientService) Replace(ctx context.Context, in ports.ClientInput) (*domain.Client, error) {
	return s.replaceFn(ctx, in)
}

func (s *stubClientService) Delete(ctx context.Context, cpf string) (*domain.Client, error) {
	return s.deleteFn(ctx, cpf)
}

// newContext builds an echo context for method/path with an optional JSON
// body and named path params.
func newContext(method, path, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c, rec
}
