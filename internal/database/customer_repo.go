package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"crmdesk-backend/internal/models"
)

const customerSelect = `
	SELECT
		c.id,
		c.first_name,
		c.last_name,
		c.email,
		c.phone,
		c.company_id,
		co.name AS company_name,
		c.created_at,
		c.updated_at
	FROM customers c
	LEFT JOIN companies co ON c.company_id = co.id
`

// CustomerRepo handles customer database operations
type CustomerRepo struct {
	db *sqlx.DB
}

func NewCustomerRepo(db *sqlx.DB) *CustomerRepo {
	return &CustomerRepo{db: db}
}

// List returns all customers with their company names
func (r *CustomerRepo) List(ctx context.Context) ([]models.Customer, error) {
	customers := []models.Customer{}
	err := r.db.SelectContext(ctx, &customers, customerSelect+" ORDER BY c.id")
	return customers, err
}

// Get retrieves a customer by ID
func (r *CustomerRepo) Get(ctx context.Context, id int64) (*models.Customer, error) {
	customer := &models.Customer{}
	err := r.db.GetContext(ctx, customer, customerSelect+" WHERE c.id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// Create inserts a customer and returns the stored row
func (r *CustomerRepo) Create(ctx context.Context, in models.CustomerInput) (*models.Customer, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO customers (first_name, last_name, email, phone, company_id)
		VALUES (?, ?, ?, ?, ?)
	`, in.FirstName, in.LastName, in.Email, nullIfEmpty(in.Phone), nullIfZero(in.CompanyID))
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// Update overwrites a customer and returns the stored row
func (r *CustomerRepo) Update(ctx context.Context, id int64, in models.CustomerInput) (*models.Customer, error) {
	_, err := r.db.ExecContext(ctx, `
		UPDATE customers
		SET first_name = ?, last_name = ?, email = ?, phone = ?, company_id = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, in.FirstName, in.LastName, in.Email, nullIfEmpty(in.Phone), nullIfZero(in.CompanyID), id)
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// Delete removes a customer. Deleting an unknown id is not an error.
func (r *CustomerRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM customers WHERE id = ?", id)
	return err
}

// nullIfZero maps a missing or zero foreign key to NULL
func nullIfZero(id *int64) *int64 {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}
