package database

import (
	"context"

	"github.com/jmoiron/sqlx"

	"crmdesk-backend/internal/models"
)

// CompanyRepo handles company database operations
type CompanyRepo struct {
	db *sqlx.DB
}

func NewCompanyRepo(db *sqlx.DB) *CompanyRepo {
	return &CompanyRepo{db: db}
}

// List returns all companies ordered by name
func (r *CompanyRepo) List(ctx context.Context) ([]models.Company, error) {
	companies := []models.Company{}
	err := r.db.SelectContext(ctx, &companies, `
		SELECT id, name, industry, website, address, city, state, zip_code, country, created_at, updated_at
		FROM companies
		ORDER BY name
	`)
	return companies, err
}
