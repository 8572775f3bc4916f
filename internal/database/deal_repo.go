package database

import (
	"context"

	"github.com/jmoiron/sqlx"

	"crmdesk-backend/internal/models"
)

// DealRepo handles deal database operations
type DealRepo struct {
	db *sqlx.DB
}

func NewDealRepo(db *sqlx.DB) *DealRepo {
	return &DealRepo{db: db}
}

// List returns all deals with customer and company names
func (r *DealRepo) List(ctx context.Context) ([]models.Deal, error) {
	deals := []models.Deal{}
	err := r.db.SelectContext(ctx, &deals, `
		SELECT
			d.id,
			d.title,
			d.customer_id,
			c.first_name || ' ' || c.last_name AS customer_name,
			d.company_id,
			co.name AS company_name,
			d.value,
			d.stage,
			d.probability,
			d.expected_close_date,
			d.created_at,
			d.updated_at
		FROM deals d
		LEFT JOIN customers c ON d.customer_id = c.id
		LEFT JOIN companies co ON d.company_id = co.id
		ORDER BY d.id
	`)
	return deals, err
}
