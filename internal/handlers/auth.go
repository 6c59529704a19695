package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/moodora/moodora-backend/internal/models"
	"github.com/moodora/moodora-backend/internal/storage"
	"github.com/moodora/moodora-backend/pkg/utils"
)

type RegisterRequest struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Password           string `json:"password"`
	Gender             string `json:"gender"`
	LastMenstrualCycle string `json:"lastMenstrualCycle,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the user and the issued session token.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Register creates a user and issues a session.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	fields := make(map[string]string)
	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "Name is required"
	}
	if !strings.Contains(req.Email, "@") {
		fields["email"] = "Please enter a valid email"
	}
	if len(req.Password) < 6 {
		fields["password"] = "Password must be at least 6 characters"
	}
	gender, ok := models.ParseGender(req.Gender)
	if !ok {
		fields["gender"] = "Gender must be male or female"
	}

	// Last cycle date is only meaningful for female users
	var lastCycle *time.Time
	if req.LastMenstrualCycle != "" && gender == models.GenderFemale {
		t, err := parseDate(req.LastMenstrualCycle)
		if err != nil {
			fields["lastMenstrualCycle"] = "Invalid date format"
		} else {
			lastCycle = &t
		}
	}

	if len(fields) > 0 {
		writeValidationError(w, fields)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user, err := h.Store.CreateUser(storage.CreateUserParams{
		Name:               strings.TrimSpace(req.Name),
		Email:              strings.TrimSpace(req.Email),
		PasswordHash:       hash,
		Gender:             gender,
		LastMenstrualCycle: lastCycle,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			writeError(w, http.StatusBadRequest, "Email already registered")
			return
		}
		log.Printf("Failed to create user: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := h.Sessions.Create(user.ID)
	if err != nil {
		log.Printf("Failed to create session: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{User: user, Token: token})
}

// Login verifies credentials and issues a session.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.Store.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		log.Printf("Failed to load user by email: %v", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	valid, err := utils.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil || !valid {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.Sessions.Create(user.ID)
	if err != nil {
		log.Printf("Failed to create session: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{User: user, Token: token})
}

// Logout invalidates the caller's session. Always 200, even for tokens that
// are already gone.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	if err := h.Sessions.Invalidate(token); err != nil {
		log.Printf("Failed to invalidate session: %v", err)
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// CurrentUser returns the authenticated user.
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user := h.requireAuth(w, r)
	if user == nil {
		return
	}
	writeJSON(w, http.StatusOK, user)
}
