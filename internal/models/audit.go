package models

import "time"

// AuditLog represents a recorded authentication event
type AuditLog struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	UserID    *int64    `json:"user_id"`
	Username  string    `json:"username"`
	Action    string    `json:"action"`
	IPAddress string    `json:"ip_address,omitempty"`
}

// Audit actions
const (
	ActionLogin          = "login"
	ActionLoginBootstrap = "login.bootstrap"
	ActionLoginFailed    = "login.failed"
	ActionLogout         = "logout"
)

// AuditFilter narrows an audit log listing
type AuditFilter struct {
	Action string
	Limit  int
	Offset int
}
