package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"crmdesk-backend/internal/models"
)

const leadSelect = `
	SELECT id, first_name, last_name, email, phone, company, status, source, notes, created_at, updated_at
	FROM leads
`

// LeadRepo handles lead database operations
type LeadRepo struct {
	db *sqlx.DB
}

func NewLeadRepo(db *sqlx.DB) *LeadRepo {
	return &LeadRepo{db: db}
}

// List returns all leads, newest first
func (r *LeadRepo) List(ctx context.Context) ([]models.Lead, error) {
	leads := []models.Lead{}
	err := r.db.SelectContext(ctx, &leads, leadSelect+" ORDER BY id DESC")
	return leads, err
}

func (r *LeadRepo) Get(ctx context.Context, id int64) (*models.Lead, error) {
	lead := &models.Lead{}
	err := r.db.GetContext(ctx, lead, leadSelect+" WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

func (r *LeadRepo) Create(ctx context.Context, in models.LeadInput) (*models.Lead, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO leads (first_name, last_name, email, phone, company, status, source, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, in.FirstName, in.LastName, in.Email, nullIfEmpty(in.Phone), nullIfEmpty(in.Company),
		leadStatus(in.Status), nullIfEmpty(in.Source), nullIfEmpty(in.Notes))
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *LeadRepo) Update(ctx context.Context, id int64, in models.LeadInput) (*models.Lead, error) {
	_, err := r.db.ExecContext(ctx, `
		UPDATE leads
		SET first_name = ?, last_name = ?, email = ?, phone = ?, company = ?, status = ?, source = ?, notes = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, in.FirstName, in.LastName, in.Email, nullIfEmpty(in.Phone), nullIfEmpty(in.Company),
		leadStatus(in.Status), nullIfEmpty(in.Source), nullIfEmpty(in.Notes), id)
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *LeadRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM leads WHERE id = ?", id)
	return err
}

func leadStatus(s string) string {
	if s == "" {
		return models.LeadStatusNew
	}
	return s
}
