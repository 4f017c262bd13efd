package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/cabeleireiro/agenda-api/internal/api/handler"
	"github.com/cabeleireiro/agenda-api/internal/api/middleware"
	"github.com/cabeleireiro/agenda-api/internal/core/ports"
)

// Deps holds everything the router needs. RateLimiter and Health are
// optional.
type Deps struct {
	Appointments ports.AppointmentService
	Clients      ports.ClientService
	History      ports.HistoryService
	Health       map[string]handler.Pinger
	RateLimiter  *middleware.RateLimiter
	Logger       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(middleware.Metrics())
	if deps.RateLimiter != nil {
		e.Use(middleware.RateLimit(deps.RateLimiter))
	}

	// --- Handlers ---
	appointments := handler.NewAppointmentHandler(deps.Appointments)
	clients := handler.NewClientHandler(deps.Clients)
	history := handler.NewHistoryHandler(deps.History)
	health := handler.NewHealthHandler(deps.Health)

	// --- Appointment routes ---
	e.GET("/agendamentos", appointments.List)
	e.POST("/agendamentos", appointments.Create)
	e.GET("/agendamentos/:id", appointments.Get)
	e.PUT("/agendamentos/:id", appointments.Update)
	e.DELETE("/agendamentos/:id", appointments.Delete)
	e.GET("/agendamentos/:id/usuario", appointments.GetOwner)
	e.GET("/agendamentos/:id/historico", history.Appointment)

	// --- Client routes ---
	e.POST("/usuario", clients.Create)
	e.GET("/usuario/:cpf", clients.Get)
	e.PUT("/usuario/:cpf", clients.Update)
	e.DELETE("/usuario/:cpf", clients.Delete)
	e.GET("/usuario/:cpf/historico", history.Client)

	// --- Operational endpoints ---
	e.GET("/health", health.Liveness)        // process is serving
	e.GET("/health/ready", health.Readiness) // dependencies reachable
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
