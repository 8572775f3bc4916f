package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"crmdesk-backend/internal/models"
)

// Context keys for storing request identity
const (
	ContextKeyIdentity  = "identity"
	ContextKeySessionID = "session_id"
)

// LoginPagePath is where unauthenticated page requests are sent
const LoginPagePath = "/login"

// RequireSession admits requests carrying a live session cookie. API
// requests without one get a 401 JSON body, page requests are redirected
// to the login page. Paths in exempt pass through untouched.
func RequireSession(authSvc *Service, exempt ...string) echo.MiddlewareFunc {
	skip := make(map[string]struct{}, len(exempt))
	for _, p := range exempt {
		skip[p] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if _, ok := skip[path]; ok {
				return next(c)
			}

			sessionID := SessionIDFromRequest(c)
			if sessionID == "" {
				return reject(c, path)
			}

			identity, err := authSvc.Authenticate(c.Request().Context(), sessionID)
			if err != nil {
				return reject(c, path)
			}

			c.Set(ContextKeyIdentity, identity)
			c.Set(ContextKeySessionID, sessionID)

			return next(c)
		}
	}
}

func reject(c echo.Context, path string) error {
	if IsAPIPath(path) {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
	}
	return c.Redirect(http.StatusFound, LoginPagePath)
}

// IsAPIPath reports whether path belongs to the JSON API
func IsAPIPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}

// IdentityFromContext returns the identity stored by RequireSession
func IdentityFromContext(c echo.Context) *models.Identity {
	identity, _ := c.Get(ContextKeyIdentity).(*models.Identity)
	return identity
}

// RequireAdmin rejects identities without the admin flag. Must be used after RequireSession.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := IdentityFromContext(c)
			if identity == nil {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
			}
			if !identity.IsAdmin {
				return c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "Forbidden"})
			}
			return next(c)
		}
	}
}
