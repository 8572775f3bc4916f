package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"crmdesk-backend/internal/auth"
	"crmdesk-backend/internal/database"
	"crmdesk-backend/internal/logging"
)

type testServer struct {
	e  *echo.Echo
	db *sqlx.DB
}

func newTestServer(t *testing.T, opts ...func(*Deps)) *testServer {
	t.Helper()

	db, err := database.Open(database.Config{Path: database.MemoryPath})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logging.Discard()
	deps := Deps{
		DB:     db,
		Schema: database.NewBootstrapper(db, log),
		Auth:   auth.NewService(database.NewUserRepo(db), database.NewSessionRepo(db), auth.DefaultSessionTTL, log),
		Log:    log,
	}
	for _, opt := range opts {
		opt(&deps)
	}

	return &testServer{e: NewServer(deps), db: db}
}

func (s *testServer) do(t *testing.T, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

// login signs in and returns the issued session cookie
func (s *testServer) login(t *testing.T, username, password string) *http.Cookie {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/api/login", `{"username":"`+username+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return sessionCookie(t, rec)
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.SessionCookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", auth.SessionCookieName)
	return nil
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func countRows(t *testing.T, db *sqlx.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}

type failingSchema struct{ calls int }

func (f *failingSchema) Ensure(context.Context) (bool, error) {
	f.calls++
	return false, context.DeadlineExceeded
}
