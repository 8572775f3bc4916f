package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"crmdesk-backend/internal/models"
)

// ErrSessionNotFound covers unknown, deleted and expired sessions alike
var ErrSessionNotFound = errors.New("session not found")

// SessionRepo handles session database operations. Timestamps are stored as
// unix seconds so expiry comparisons happen on integers.
type SessionRepo struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(db *sqlx.DB) *SessionRepo {
	return &SessionRepo{db: db, now: time.Now}
}

// WithClock returns a copy of the repository that reads the time from now
func (r *SessionRepo) WithClock(now func() time.Time) *SessionRepo {
	return &SessionRepo{db: r.db, now: now}
}

// Create creates a new session that expires ttl from now
func (r *SessionRepo) Create(ctx context.Context, userID int64, ttl time.Duration) (*models.Session, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	createdAt := r.now().UTC().Truncate(time.Second)
	session := &models.Session{
		ID:        id.String(),
		UserID:    userID,
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(ttl),
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO sessions (id, user_id, created_at, expires_at)
		VALUES (?, ?, ?, ?)
	`, session.ID, session.UserID, session.CreatedAt.Unix(), session.ExpiresAt.Unix())
	if err != nil {
		return nil, err
	}

	return session, nil
}

// Resolve returns the owner of a live session. Expired rows are left in
// place for the sweeper.
func (r *SessionRepo) Resolve(ctx context.Context, id string) (*models.Identity, error) {
	if id == "" {
		return nil, ErrSessionNotFound
	}

	identity := &models.Identity{}
	err := r.db.QueryRowContext(ctx, `
		SELECT u.id, u.username, u.is_admin
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.id = ? AND s.expires_at > ?
	`, id, r.now().Unix()).Scan(&identity.UserID, &identity.Username, &identity.IsAdmin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	return identity, nil
}

// Invalidate deletes a session. Deleting an unknown session is not an error.
func (r *SessionRepo) Invalidate(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	_, err := r.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id)
	return err
}

// DeleteExpired removes all expired sessions
func (r *SessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM sessions WHERE expires_at <= ?", r.now().Unix())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// CountForUser returns the number of live sessions for a user
func (r *SessionRepo) CountForUser(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sessions WHERE user_id = ? AND expires_at > ?",
		userID, r.now().Unix(),
	).Scan(&count)
	return count, err
}
