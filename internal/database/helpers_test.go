package database

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"crmdesk-backend/internal/logging"
)

// newTestDB opens a private in-memory database with the full schema.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := Open(Config{Path: MemoryPath})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = NewBootstrapper(db, logging.Discard()).Ensure(context.Background())
	require.NoError(t, err)
	return db
}

func countRows(t *testing.T, db *sqlx.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}
