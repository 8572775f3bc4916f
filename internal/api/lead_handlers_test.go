package api

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crmdesk-backend/internal/models"
)

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func TestLeads_CRUD(t *testing.T) {
	s := newTestServer(t)
	cookie := s.login(t, "admin", "s3cret")

	rec := s.do(t, http.MethodPost, "/api/leads",
		`{"first_name":"Grace","last_name":"Hopper","email":"grace@example.com","company":"Navy"}`, cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	lead := decode[models.Lead](t, rec)
	assert.Equal(t, models.LeadStatusNew, lead.Status)
	require.NotNil(t, lead.Company)
	assert.Equal(t, "Navy", *lead.Company)

	rec = s.do(t, http.MethodPut, "/api/leads/"+itoa(lead.ID),
		`{"first_name":"Grace","last_name":"Hopper","email":"grace@example.com","status":"qualified"}`, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "qualified", decode[models.Lead](t, rec).Status)

	rec = s.do(t, http.MethodGet, "/api/leads", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Lead](t, rec), 1)

	rec = s.do(t, http.MethodDelete, "/api/leads/"+itoa(lead.ID), "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, countRows(t, s.db, "leads"))
}

func TestLeads_Validation(t *testing.T) {
	s := newTestServer(t)
	cookie := s.login(t, "admin", "s3cret")

	rec := s.do(t, http.MethodPost, "/api/leads", `{"email":"x@example.com"}`, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPut, "/api/leads/x", `{}`, cookie)
	assert.JSONEq(t, `{"error":"Invalid lead ID"}`, rec.Body.String())

	rec = s.do(t, http.MethodPut, "/api/leads/42", `{"first_name":"A","last_name":"B","email":"c"}`, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Lead not found"}`, rec.Body.String())
}
