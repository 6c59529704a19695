package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/moodora/moodora-backend/internal/handlers"
	"github.com/moodora/moodora-backend/internal/routes"
	"github.com/moodora/moodora-backend/internal/services"
	"github.com/moodora/moodora-backend/internal/storage"
)

// testServer wires the full router against the in-memory backends, exactly
// as main does when no Postgres or Redis is configured.
type testServer struct {
	t       *testing.T
	router  *chi.Mux
	store   *storage.MemoryStore
	handler *handlers.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := storage.NewMemoryStore()
	h := handlers.New(store, services.NewMemorySessions())
	h.Now = func() time.Time {
		return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	}
	r := chi.NewRouter()
	routes.SetupRoutes(r, h)
	return &testServer{t: t, router: r, store: store, handler: h}
}

func (ts *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	ts.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(ts.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}

// register creates a user through the API and returns its session token.
func (ts *testServer) register(email, gender string) string {
	ts.t.Helper()
	rec := ts.do(http.MethodPost, "/api/register", "", map[string]string{
		"name":     "Test User",
		"email":    email,
		"password": "secret123",
		"gender":   gender,
	})
	require.Equal(ts.t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	decode(ts.t, rec, &resp)
	require.NotEmpty(ts.t, resp.Token)
	return resp.Token
}
