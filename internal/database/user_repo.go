package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"crmdesk-backend/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepo handles user database operations
type UserRepo struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db, now: time.Now}
}

// Count returns the total number of users
func (r *UserRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}

// CreateFirstAdmin inserts an admin user only while the users table is
// empty. The emptiness check and the insert are one statement, so of two
// concurrent callers at most one gets created == true.
func (r *UserRepo) CreateFirstAdmin(ctx context.Context, username, passwordHash string) (*models.User, bool, error) {
	createdAt := r.now().UTC().Truncate(time.Second)

	result, err := r.db.ExecContext(ctx, `
		INSERT INTO users (username, password_hash, is_admin, created_at)
		SELECT ?, ?, 1, ?
		WHERE NOT EXISTS (SELECT 1 FROM users)
	`, username, passwordHash, createdAt.Unix())
	if err != nil {
		if isUniqueViolation(err) {
			return nil, false, ErrUserAlreadyExists
		}
		return nil, false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, false, err
	}
	if rows == 0 {
		return nil, false, nil
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, false, err
	}

	return &models.User{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
		IsAdmin:      true,
		CreatedAt:    createdAt,
	}, true, nil
}

// GetByID retrieves a user by ID
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, "SELECT id, username, password_hash, is_admin, created_at FROM users WHERE id = ?", id)
}

// GetByUsername retrieves a user by username
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, "SELECT id, username, password_hash, is_admin, created_at FROM users WHERE username = ?", username)
}

func (r *UserRepo) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	user := &models.User{}
	var createdAt int64

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.IsAdmin, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	user.CreatedAt = time.Unix(createdAt, 0).UTC()
	return user, nil
}
