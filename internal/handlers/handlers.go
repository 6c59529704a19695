package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/moodora/moodora-backend/internal/models"
	"github.com/moodora/moodora-backend/internal/services"
	"github.com/moodora/moodora-backend/internal/storage"
)

// Handler holds the injected store and session backends. Swapping Postgres
// for the in-memory store (or Redis sessions for in-process ones) never
// touches a handler.
type Handler struct {
	Store    storage.Store
	Sessions services.SessionStore
	// Now is the clock; tests pin it.
	Now func() time.Time
}

func New(store storage.Store, sessions services.SessionStore) *Handler {
	return &Handler{
		Store:    store,
		Sessions: sessions,
		Now:      time.Now,
	}
}

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

func writeValidationError(w http.ResponseWriter, fields map[string]string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Validation error", Errors: fields})
}

func extractBearerToken(header string) string {
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}

// requireAuth resolves the caller from the bearer token. On failure it
// writes the 401 and returns nil.
func (h *Handler) requireAuth(w http.ResponseWriter, r *http.Request) *models.User {
	token := extractBearerToken(r.Header.Get("Authorization"))
	userID, ok, err := h.Sessions.Validate(token)
	if err != nil || !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return nil
	}

	user, err := h.Store.GetUser(userID)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return nil
	}
	return user
}

// requireFemale is requireAuth plus the gender gate for cycle features.
func (h *Handler) requireFemale(w http.ResponseWriter, r *http.Request) *models.User {
	user := h.requireAuth(w, r)
	if user == nil {
		return nil
	}
	if user.Gender != models.GenderFemale {
		writeError(w, http.StatusForbidden, "Feature only available for female users")
		return nil
	}
	return user
}

// parseDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
