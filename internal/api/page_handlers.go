package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"crmdesk-backend/internal/pages"
)

func (h *Handler) indexPage(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, pages.Index)
}

func (h *Handler) loginPage(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, pages.Login)
}
