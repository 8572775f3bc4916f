package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"crmdesk-backend/internal/logging"
)

// Bootstrapper creates the schema and the sample data. Ensure is meant to be
// called on every request: every statement it issues is idempotent.
type Bootstrapper struct {
	db  *sqlx.DB
	log logging.Logger
}

// NewBootstrapper creates a new schema bootstrapper
func NewBootstrapper(db *sqlx.DB, log logging.Logger) *Bootstrapper {
	return &Bootstrapper{db: db, log: log}
}

// Ensure makes sure every table exists. It reports whether this call had to
// create the CRM schema (the sentinel table was missing).
func (b *Bootstrapper) Ensure(ctx context.Context) (bool, error) {
	for _, t := range coreTables {
		if _, err := b.db.ExecContext(ctx, t.ddl); err != nil {
			return false, fmt.Errorf("create table %s: %w", t.name, err)
		}
	}

	exists, err := b.tableExists(ctx, sentinelTable)
	if err != nil {
		return false, fmt.Errorf("check table %s: %w", sentinelTable, err)
	}
	if exists {
		return false, nil
	}

	b.log.Info(ctx, "tables not found, running auto-migration")

	for _, name := range legacyTables {
		if _, err := b.db.ExecContext(ctx, "DROP TABLE IF EXISTS "+name); err != nil {
			return false, fmt.Errorf("drop table %s: %w", name, err)
		}
	}

	for _, t := range crmTables {
		if _, err := b.db.ExecContext(ctx, t.ddl); err != nil {
			return false, fmt.Errorf("create table %s: %w", t.name, err)
		}
	}

	if err := b.seed(ctx); err != nil {
		return false, err
	}

	b.log.Info(ctx, "auto-migration completed")
	return true, nil
}

func (b *Bootstrapper) seed(ctx context.Context) error {
	var count int
	if err := b.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM companies"); err != nil {
		return fmt.Errorf("count companies: %w", err)
	}
	if count > 0 {
		return nil
	}

	b.log.Info(ctx, "inserting sample data")
	for _, s := range seedStatements {
		if _, err := b.db.ExecContext(ctx, s.ddl); err != nil {
			return fmt.Errorf("seed %s: %w", s.name, err)
		}
	}
	return nil
}

func (b *Bootstrapper) tableExists(ctx context.Context, name string) (bool, error) {
	var count int
	err := b.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name)
	return count > 0, err
}
