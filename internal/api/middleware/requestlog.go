package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cabeleireiro/agenda-api/internal/pkg/reqctx"
)

// RequestLogger logs one line per request and makes the request id set by
// echo's RequestID middleware available to the core through the context.
// It must run after RequestID.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			id := c.Response().Header().Get(echo.HeaderXRequestID)
			c.SetRequest(req.WithContext(reqctx.WithRequestID(req.Context(), id)))

			if err := next(c); err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			ev := log.Info()
			switch {
			case status >= 500:
				ev = log.Error()
			case status >= 400:
				ev = log.Warn()
			}
			ev.Str("request_id", id).
				Str("method", req.Method).
				Str("route", c.Path()).
				Str("uri", req.RequestURI).
				Str("remote_ip", c.RealIP()).
				Int("status", status).
				Dur("latency", time.Since(start)).
				Int64("bytes_out", c.Response().Size).
				Msg("request")
			return nil
		}
	}
}
