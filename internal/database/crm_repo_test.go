package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crmdesk-backend/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int64) *int64   { return &i }

func TestCompanyRepo_ListOrderedByName(t *testing.T) {
	companies, err := NewCompanyRepo(newTestDB(t)).List(context.Background())
	require.NoError(t, err)
	require.Len(t, companies, 3)

	assert.Equal(t, "Acme Corp", companies[0].Name)
	assert.Equal(t, "Global Solutions", companies[1].Name)
	assert.Equal(t, "TechStart Inc", companies[2].Name)
	require.NotNil(t, companies[0].City)
	assert.Equal(t, "San Francisco", *companies[0].City)
}

func TestCustomerRepo_CRUD(t *testing.T) {
	repo := NewCustomerRepo(newTestDB(t))
	ctx := context.Background()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.NotNil(t, list[0].CompanyName)
	assert.Equal(t, "Acme Corp", *list[0].CompanyName)

	created, err := repo.Create(ctx, models.CustomerInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     strPtr(""),
		CompanyID: intPtr(2),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), created.ID)
	assert.Nil(t, created.Phone, "empty phone is stored as NULL")
	require.NotNil(t, created.CompanyName)
	assert.Equal(t, "TechStart Inc", *created.CompanyName)

	updated, err := repo.Update(ctx, created.ID, models.CustomerInput{
		FirstName: "Ada",
		LastName:  "King",
		Email:     "ada@example.com",
		Phone:     strPtr("+44-20-0000"),
	})
	require.NoError(t, err)
	assert.Equal(t, "King", updated.LastName)
	assert.Nil(t, updated.CompanyID)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "+44-20-0000", *updated.Phone)

	_, err = repo.Update(ctx, 999, models.CustomerInput{FirstName: "x", LastName: "y", Email: "z"})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Delete(ctx, created.ID))
	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLeadRepo_CRUDDefaultsStatus(t *testing.T) {
	repo := NewLeadRepo(newTestDB(t))
	ctx := context.Background()

	lead, err := repo.Create(ctx, models.LeadInput{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Source:    strPtr("conference"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.LeadStatusNew, lead.Status)
	require.NotNil(t, lead.Source)
	assert.Nil(t, lead.Company)

	lead, err = repo.Update(ctx, lead.ID, models.LeadInput{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Status:    "qualified",
	})
	require.NoError(t, err)
	assert.Equal(t, "qualified", lead.Status)
	assert.Nil(t, lead.Source)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, lead.ID))
	_, err = repo.Get(ctx, lead.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDealRepo_ListJoinsNames(t *testing.T) {
	deals, err := NewDealRepo(newTestDB(t)).List(context.Background())
	require.NoError(t, err)
	require.Len(t, deals, 3)

	d := deals[0]
	assert.Equal(t, "Enterprise License Agreement", d.Title)
	require.NotNil(t, d.CustomerName)
	assert.Equal(t, "John Smith", *d.CustomerName)
	require.NotNil(t, d.CompanyName)
	assert.Equal(t, "Acme Corp", *d.CompanyName)
	require.NotNil(t, d.Value)
	assert.InDelta(t, 50000.0, *d.Value, 0.001)
	assert.Equal(t, "negotiation", d.Stage)
}
