package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cabeleireiro/agenda-api/internal/core/domain"
	"github.com/cabeleireiro/agenda-api/internal/core/ports"
)

const maxIdempotencyKeyLen = 255

// AppointmentHandler handles HTTP requests for appointment operations.
// Errors are returned to the central error handler.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// GetOwner handles GET /agendamentos/:id/usuario.
//
// @Summary      Get the CPF of the client who owns an appointment
// @Tags         agendamentos
// @Produce      json
// @Param        id   path      int  true  "Appointment id"
// @Success      200  {object}  ownerResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /agendamentos/{id}/usuario [get]
func (h *AppointmentHandler) GetOwner(c echo.Context) error {
	id, err := appointmentID(c)
	if err != nil {
		return err
	}

	cpf, err := h.service.GetOwner(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ownerResponse{CPF: cpf})
}

// Create handles POST /agendamentos.
//
// @Summary      Create an appointment
// @Tags         agendamentos
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string                    false  "Replays within the TTL return the first id"
// @Param        body             body      createAppointmentRequest  true   "Appointment"
// @Success      201              {object}  createAppointmentResponse
// @Failure      400              {object}  map[string]string
// @Failure      422              {object}  map[string]string
// @Failure      500              {object}  map[string]string
// @Router       /agendamentos [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req createAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	key := c.Request().Header.Get("Idempotency-Key")
	if len(key) > maxIdempotencyKeyLen {
		return fmt.Errorf("%w: Idempotency-Key longer than %d bytes", domain.ErrInvalidInput, maxIdempotencyKeyLen)
	}

	input, err := toCreateAppointmentInput(req, key)
	if err != nil {
		return err
	}

	result, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}
	if result.AlreadyExisted {
		c.Response().Header().Set("Idempotent-Replayed", "true")
	}
	return c.JSON(http.StatusCreated, createAppointmentResponse{ID: result.ID})
}

// List handles GET /agendamentos.
//
// @Summary      List all appointments
// @Tags         agendamentos
// @Produce      json
// @Success      200  {array}   appointmentResponse
// @Failure      500  {object}  map[string]string
// @Router       /agendamentos [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	list, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAppointmentResponses(list))
}

// Get handles GET /agendamentos/:id.
//
// @Summary      Get an appointment
// @Tags         agendamentos
// @Produce      json
// @Param        id   path      int  true  "Appointment id"
// @Success      200  {object}  appointmentResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /agendamentos/{id} [get]
func (h *AppointmentHandler) Get(c echo.Context) error {
	id, err := appointmentID(c)
	if err != nil {
		return err
	}

	a, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAppointmentResponse(*a))
}

// Update handles PUT /agendamentos/:id. Omitted fields keep their stored value.
//
// @Summary      Update an appointment
// @Tags         agendamentos
// @Accept       json
// @Produce      json
// @Param        id    path      int                       true  "Appointment id"
// @Param        body  body      updateAppointmentRequest  true  "Fields to change"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /agendamentos/{id} [put]
func (h *AppointmentHandler) Update(c echo.Context) error {
	id, err := appointmentID(c)
	if err != nil {
		return err
	}

	var req updateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	patch, err := toAppointmentPatch(req)
	if err != nil {
		return err
	}
	if err := h.service.Update(c.Request().Context(), id, patch); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "appointment updated"})
}

// Delete handles DELETE /agendamentos/:id.
//
// @Summary      Delete an appointment
// @Tags         agendamentos
// @Produce      json
// @Param        id   path      int  true  "Appointment id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /agendamentos/{id} [delete]
func (h *AppointmentHandler) Delete(c echo.Context) error {
	id, err := appointmentID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "appointment deleted"})
}

// appointmentID parses the :id path parameter. id_agendamento is a SERIAL
// (int4) column, so an integer outside that range names no appointment.
func appointmentID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if errors.Is(err, strconv.ErrRange) {
		return 0, domain.ErrAppointmentNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: appointment id must be an integer", domain.ErrInvalidInput)
	}
	return id, nil
}
