package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"crmdesk-backend/internal/models"
)

// DefaultAuditLimit caps listings that do not set a limit
const DefaultAuditLimit = 100

// AuditRepo handles audit log database operations
type AuditRepo struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewAuditRepo creates a new audit repository
func NewAuditRepo(db *sqlx.DB) *AuditRepo {
	return &AuditRepo{db: db, now: time.Now}
}

// Log records an event with the current timestamp. userID may be nil for
// events about unknown users.
func (r *AuditRepo) Log(ctx context.Context, userID *int64, username, action, ipAddress string) (*models.AuditLog, error) {
	entry := &models.AuditLog{
		Timestamp: r.now().UTC().Truncate(time.Second),
		UserID:    userID,
		Username:  username,
		Action:    action,
		IPAddress: ipAddress,
	}

	result, err := r.db.ExecContext(ctx, `
		INSERT INTO audit_logs (timestamp, user_id, username, action, ip_address)
		VALUES (?, ?, ?, ?, ?)
	`, entry.Timestamp.Unix(), userID, username, action, nullIfEmpty(&ipAddress))
	if err != nil {
		return nil, err
	}

	entry.ID, err = result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// List retrieves audit logs, newest first, with optional filters
func (r *AuditRepo) List(ctx context.Context, filter models.AuditFilter) ([]models.AuditLog, error) {
	query := "SELECT id, timestamp, user_id, username, action, ip_address FROM audit_logs"
	args := []any{}

	if filter.Action != "" {
		query += " WHERE action = ?"
		args = append(args, filter.Action)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultAuditLimit
	}
	query += " ORDER BY id DESC LIMIT ? OFFSET ?"
	args = append(args, limit, max(filter.Offset, 0))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []models.AuditLog{}
	for rows.Next() {
		var (
			entry     models.AuditLog
			ts        int64
			userID    sql.NullInt64
			ipAddress sql.NullString
		)
		if err := rows.Scan(&entry.ID, &ts, &userID, &entry.Username, &entry.Action, &ipAddress); err != nil {
			return nil, err
		}
		entry.Timestamp = time.Unix(ts, 0).UTC()
		if userID.Valid {
			id := userID.Int64
			entry.UserID = &id
		}
		entry.IPAddress = ipAddress.String
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}
