package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cabeleireiro/agenda-api/internal/core/domain"
	"github.com/cabeleireiro/agenda-api/internal/core/ports"
)

// ClientHandler handles HTTP requests for client operations.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// Get handles GET /usuario/:cpf.
//
// @Summary      Get a client by CPF
// @Tags         usuario
// @Produce      json
// @Param        cpf  path      string  true  "Client CPF"
// @Success      200  {object}  clientResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /usuario/{cpf} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	client, err := h.service.Get(c.Request().Context(), c.Param("cpf"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponse(client))
}

// Create handles POST /usuario.
//
// @Summary      Register a client
// @Tags         usuario
// @Accept       json
// @Produce      json
// @Param        body  body      createClientRequest  true  "Client"
// @Success      200   {object}  clientResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /usuario [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := toCreateClientInput(req)
	if err != nil {
		return err
	}
	client, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponse(client))
}

// Update handles PUT /usuario/:cpf. Every field is replaced.
//
// @Summary      Replace a client
// @Tags         usuario
// @Accept       json
// @Produce      json
// @Param        cpf   path      string               true  "Client CPF"
// @Param        body  body      updateClientRequest  true  "Client"
// @Success      200   {object}  clientResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /usuario/{cpf} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	cpf := c.Param("cpf")

	var req updateClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.CPF != nil && *req.CPF != cpf {
		return fmt.Errorf("%w: CPF in body does not match path", domain.ErrInvalidInput)
	}

	input, err := toReplaceClientInput(cpf, req)
	if err != nil {
		return err
	}
	client, err := h.service.Replace(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponse(client))
}

// Delete handles DELETE /usuario/:cpf and returns the removed client.
//
// @Summary      Delete a client
// @Tags         usuario
// @Produce      json
// @Param        cpf  path      string  true  "Client CPF"
// @Success      200  {object}  clientResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /usuario/{cpf} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	client, err := h.service.Delete(c.Request().Context(), c.Param("cpf"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponse(client))
}
