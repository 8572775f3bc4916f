package auth

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie holding the session identifier
const SessionCookieName = "session"

// NewSessionCookie builds the cookie issued on login
func NewSessionCookie(sessionID string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearSessionCookie builds a cookie that makes the browser drop the session
func ClearSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// SessionIDFromRequest returns the session cookie value, or "" when absent
func SessionIDFromRequest(c echo.Context) string {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
