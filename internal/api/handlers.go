package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"crmdesk-backend/internal/auth"
	"crmdesk-backend/internal/logging"
	"crmdesk-backend/internal/models"
)

// Health check
func healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// errorHandler renders framework errors. API paths get JSON, pages get text.
func errorHandler(log logging.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := "Internal server error"
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if msg, ok := he.Message.(string); ok {
				message = msg
			} else {
				message = http.StatusText(code)
			}
		} else {
			log.Error(c.Request().Context(), "unhandled error", "path", c.Request().URL.Path, "error", err)
		}
		if code == http.StatusNotFound {
			message = "Not found"
		}

		var writeErr error
		switch {
		case c.Request().Method == http.MethodHead:
			writeErr = c.NoContent(code)
		case auth.IsAPIPath(c.Request().URL.Path):
			writeErr = c.JSON(code, models.ErrorResponse{Error: message})
		default:
			writeErr = c.String(code, message)
		}
		if writeErr != nil {
			log.Error(c.Request().Context(), "write error response", "error", writeErr)
		}
	}
}

// parseID reads the :id path parameter
func parseID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// storageError logs err and answers with a stable 500 message
func (h *Handler) storageError(c echo.Context, message string, err error) error {
	h.log.Error(c.Request().Context(), message, "path", c.Request().URL.Path, "error", err)
	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: message})
}

// fetchError is storageError with the cause exposed in details
func (h *Handler) fetchError(c echo.Context, message string, err error) error {
	h.log.Error(c.Request().Context(), message, "path", c.Request().URL.Path, "error", err)
	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: message, Details: err.Error()})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: message})
}
