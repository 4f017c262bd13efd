package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cabeleireiro/agenda-api/internal/core/domain"
	"github.com/cabeleireiro/agenda-api/internal/core/ports"
)

// HistoryHandler exposes the audit trail of appointments and clients.
type HistoryHandler struct {
	service ports.HistoryService
}

func NewHistoryHandler(service ports.HistoryService) *HistoryHandler {
	return &HistoryHandler{service: service}
}

// Appointment handles GET /agendamentos/:id/historico.
//
// @Summary      Audit trail of an appointment
// @Tags         agendamentos
// @Produce      json
// @Param        id   path      int  true  "Appointment id"
// @Success      200  {array}   domain.AuditEvent
// @Failure      400  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /agendamentos/{id}/historico [get]
func (h *HistoryHandler) Appointment(c echo.Context) error {
	id, err := appointmentID(c)
	if err != nil {
		return err
	}
	return h.respond(c, domain.EntityAppointment, strconv.FormatInt(id, 10))
}

// Client handles GET /usuario/:cpf/historico.
//
// @Summary      Audit trail of a client
// @Tags         usuario
// @Produce      json
// @Param        cpf  path      string  true  "Client CPF"
// @Success      200  {array}   domain.AuditEvent
// @Failure      503  {object}  map[string]string
// @Router       /usuario/{cpf}/historico [get]
func (h *HistoryHandler) Client(c echo.Context) error {
	return h.respond(c, domain.EntityClient, c.Param("cpf"))
}

func (h *HistoryHandler) respond(c echo.Context, entity, id string) error {
	events, err := h.service.History(c.Request().Context(), entity, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}
