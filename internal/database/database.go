package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// ErrNotFound is returned by the CRM repositories when a row does not exist
var ErrNotFound = errors.New("record not found")

// Config holds database configuration
type Config struct {
	Path string
}

// Open initializes the database connection. Schema creation is left to the
// Bootstrapper, which runs on every request.
func Open(cfg Config) (*sqlx.DB, error) {
	dsn := cfg.Path
	if cfg.Path != MemoryPath {
		// Ensure directory exists
		dir := filepath.Dir(cfg.Path)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	dsn += "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to :memory: is a separate database
	if cfg.Path == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// isUniqueViolation reports whether err is a UNIQUE or PRIMARY KEY constraint failure
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
	}
	// Without extended result codes only the message tells UNIQUE apart
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// nullIfEmpty maps empty optional strings to NULL
func nullIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
