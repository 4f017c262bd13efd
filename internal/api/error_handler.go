package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cabeleireiro/agenda-api/internal/core/domain"
	"github.com/cabeleireiro/agenda-api/pkg/logger"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, 429, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrNoFieldsToUpdate):
		return http.StatusBadRequest, "no fields to update"
	case errors.Is(err, domain.ErrAppointmentNotFound):
		return http.StatusNotFound, "appointment not found"
	case errors.Is(err, domain.ErrClientNotFound):
		return http.StatusNotFound, "client not found"
	case errors.Is(err, domain.ErrClientExists):
		return http.StatusConflict, "client already exists"
	case errors.Is(err, domain.ErrEmailInUse):
		return http.StatusConflict, "email already in use"
	case errors.Is(err, domain.ErrIdempotencyInProgress):
		return http.StatusConflict, "request with this idempotency key is in progress"
	case errors.Is(err, domain.ErrClientHasAppointments):
		return http.StatusConflict, "client has appointments"
	case errors.Is(err, domain.ErrUnknownClient):
		return http.StatusUnprocessableEntity, "client does not exist"
	case errors.Is(err, domain.ErrAuditUnavailable):
		return http.StatusServiceUnavailable, "audit log unavailable"
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusInternalServerError, "database connection error"
	}

	// Unexpected error: log the real cause, return a generic message.
	l := logger.Ctx(c.Request().Context(), log)
	l.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
