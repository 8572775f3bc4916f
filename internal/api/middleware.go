package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"crmdesk-backend/internal/logging"
)

// SchemaEnsurer brings the database schema up to date
type SchemaEnsurer interface {
	Ensure(ctx context.Context) (bool, error)
}

// EnsureSchema runs the schema bootstrap before every request. Failures are
// logged and the request is served anyway.
func EnsureSchema(schema SchemaEnsurer, log logging.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			migrated, err := schema.Ensure(ctx)
			switch {
			case err != nil:
				log.Error(ctx, "schema bootstrap failed", "path", c.Request().URL.Path, "error", err)
			case migrated:
				log.Info(ctx, "crm schema created and seeded")
			}
			return next(c)
		}
	}
}

// RequestLogger writes one log line per request
func RequestLogger(log logging.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ctx := c.Request().Context()
			args := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
			}
			if v.Error != nil {
				log.Error(ctx, "request", append(args, "error", v.Error)...)
				return nil
			}
			log.Info(ctx, "request", args...)
			return nil
		},
	})
}
