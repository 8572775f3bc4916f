package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"crmdesk-backend/internal/models"
)

// recordAudit writes an audit entry. Failures are logged, never surfaced.
func (h *Handler) recordAudit(c echo.Context, userID *int64, username, action string) {
	ctx := c.Request().Context()
	if _, err := h.audit.Log(ctx, userID, username, action, c.RealIP()); err != nil {
		h.log.Warn(ctx, "audit log write failed", "action", action, "error", err)
	}
}

// listAuditLogs handles GET /api/audit
func (h *Handler) listAuditLogs(c echo.Context) error {
	filter := models.AuditFilter{Action: c.QueryParam("action")}

	if v := c.QueryParam("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			return badRequest(c, "Invalid limit")
		}
		filter.Limit = limit
	}
	if v := c.QueryParam("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			return badRequest(c, "Invalid offset")
		}
		filter.Offset = offset
	}

	logs, err := h.audit.List(c.Request().Context(), filter)
	if err != nil {
		return h.fetchError(c, "Failed to fetch audit logs", err)
	}
	return c.JSON(http.StatusOK, logs)
}
