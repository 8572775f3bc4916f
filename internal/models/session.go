package models

import "time"

// Session represents an authenticated browser session
type Session struct {
	ID        string    `json:"-"` // The cookie value, never echoed back
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is no longer usable at now
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// LoginRequest represents the request body for POST /api/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SuccessResponse is the body of login, logout and delete responses
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the body of every JSON error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
