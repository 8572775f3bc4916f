package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"crmdesk-backend/internal/auth"
	"crmdesk-backend/internal/models"
)

// login handles POST /api/login
func (h *Handler) login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil || req.Username == "" || req.Password == "" {
		return badRequest(c, "Username and password required")
	}

	ctx := c.Request().Context()
	res, err := h.auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.recordAudit(c, nil, req.Username, models.ActionLoginFailed)
			return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid credentials"})
		case errors.Is(err, auth.ErrMissingCredentials):
			return badRequest(c, "Username and password required")
		default:
			h.log.Error(ctx, "login error", "username", req.Username, "error", err)
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Login failed"})
		}
	}

	if h.limiter != nil {
		h.limiter.RecordSuccess(c.RealIP())
	}

	action := models.ActionLogin
	if res.Bootstrapped {
		action = models.ActionLoginBootstrap
	}
	h.recordAudit(c, &res.User.ID, res.User.Username, action)

	c.SetCookie(auth.NewSessionCookie(res.Session.ID, h.auth.SessionTTL()))
	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

// logout handles POST /api/logout. It always succeeds and clears the cookie.
func (h *Handler) logout(c echo.Context) error {
	ctx := c.Request().Context()
	if sessionID := auth.SessionIDFromRequest(c); sessionID != "" {
		identity, _ := h.auth.Authenticate(ctx, sessionID)
		if err := h.auth.Logout(ctx, sessionID); err != nil {
			h.log.Error(ctx, "logout error", "error", err)
		} else if identity != nil {
			h.recordAudit(c, &identity.UserID, identity.Username, models.ActionLogout)
		}
	}

	c.SetCookie(auth.ClearSessionCookie())
	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}
