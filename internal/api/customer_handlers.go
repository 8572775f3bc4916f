package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"crmdesk-backend/internal/database"
	"crmdesk-backend/internal/models"
)

// listCustomers handles GET /api/customers
func (h *Handler) listCustomers(c echo.Context) error {
	customers, err := h.customers.List(c.Request().Context())
	if err != nil {
		return h.fetchError(c, "Failed to fetch customers", err)
	}
	return c.JSON(http.StatusOK, customers)
}

// createCustomer handles POST /api/customers
func (h *Handler) createCustomer(c echo.Context) error {
	var in models.CustomerInput
	if err := c.Bind(&in); err != nil || !in.Valid() {
		return badRequest(c, "Missing required fields")
	}

	customer, err := h.customers.Create(c.Request().Context(), in)
	if err != nil {
		return h.storageError(c, "Failed to create customer", err)
	}
	return c.JSON(http.StatusCreated, customer)
}

// updateCustomer handles PUT /api/customers/:id
func (h *Handler) updateCustomer(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid customer ID")
	}

	var in models.CustomerInput
	if err := c.Bind(&in); err != nil || !in.Valid() {
		return badRequest(c, "Missing required fields")
	}

	customer, err := h.customers.Update(c.Request().Context(), id, in)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Customer not found"})
		}
		return h.storageError(c, "Failed to update customer", err)
	}
	return c.JSON(http.StatusOK, customer)
}

// deleteCustomer handles DELETE /api/customers/:id
func (h *Handler) deleteCustomer(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid customer ID")
	}

	if err := h.customers.Delete(c.Request().Context(), id); err != nil {
		return h.storageError(c, "Failed to delete customer", err)
	}
	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

// listCompanies handles GET /api/companies
func (h *Handler) listCompanies(c echo.Context) error {
	companies, err := h.companies.List(c.Request().Context())
	if err != nil {
		return h.fetchError(c, "Failed to fetch companies", err)
	}
	return c.JSON(http.StatusOK, companies)
}

// listDeals handles GET /api/deals
func (h *Handler) listDeals(c echo.Context) error {
	deals, err := h.deals.List(c.Request().Context())
	if err != nil {
		return h.fetchError(c, "Failed to fetch deals", err)
	}
	return c.JSON(http.StatusOK, deals)
}
