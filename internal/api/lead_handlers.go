package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"crmdesk-backend/internal/database"
	"crmdesk-backend/internal/models"
)

func (h *Handler) listLeads(c echo.Context) error {
	leads, err := h.leads.List(c.Request().Context())
	if err != nil {
		return h.fetchError(c, "Failed to fetch leads", err)
	}
	return c.JSON(http.StatusOK, leads)
}

func (h *Handler) createLead(c echo.Context) error {
	var in models.LeadInput
	if err := c.Bind(&in); err != nil || !in.Valid() {
		return badRequest(c, "Missing required fields")
	}

	lead, err := h.leads.Create(c.Request().Context(), in)
	if err != nil {
		return h.storageError(c, "Failed to create lead", err)
	}
	return c.JSON(http.StatusCreated, lead)
}

func (h *Handler) updateLead(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid lead ID")
	}

	var in models.LeadInput
	if err := c.Bind(&in); err != nil || !in.Valid() {
		return badRequest(c, "Missing required fields")
	}

	lead, err := h.leads.Update(c.Request().Context(), id, in)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Lead not found"})
		}
		return h.storageError(c, "Failed to update lead", err)
	}
	return c.JSON(http.StatusOK, lead)
}

func (h *Handler) deleteLead(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid lead ID")
	}

	if err := h.leads.Delete(c.Request().Context(), id); err != nil {
		return h.storageError(c, "Failed to delete lead", err)
	}
	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}
