package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/moodora/moodora-backend/internal/models"
	"github.com/moodora/moodora-backend/internal/mood"
	"github.com/moodora/moodora-backend/internal/storage"
)

type CreateMoodEntryRequest struct {
	MoodType string `json:"moodType"`
	Notes    string `json:"notes,omitempty"`
	Date     string `json:"date,omitempty"`
}

// ListMoodEntries returns all of the caller's entries, most recent first.
func (h *Handler) ListMoodEntries(w http.ResponseWriter, r *http.Request) {
	user := h.requireAuth(w, r)
	if user == nil {
		return
	}

	entries, err := h.Store.GetMoodEntries(user.ID)
	if err != nil {
		log.Printf("Failed to fetch mood entries: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch mood entries")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// MoodEntriesByRange returns the caller's entries between startDate and
// endDate inclusive, ascending. Both parameters are required ISO-8601 dates.
func (h *Handler) MoodEntriesByRange(w http.ResponseWriter, r *http.Request) {
	user := h.requireAuth(w, r)
	if user == nil {
		return
	}

	startStr := r.URL.Query().Get("startDate")
	endStr := r.URL.Query().Get("endDate")
	if startStr == "" || endStr == "" {
		writeError(w, http.StatusBadRequest, "Invalid date format")
		return
	}
	start, err := parseDate(startStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format")
		return
	}
	end, err := parseDate(endStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format")
		return
	}

	entries, err := h.Store.GetMoodEntriesByDateRange(user.ID, start, end)
	if err != nil {
		log.Printf("Failed to fetch mood entries by date range: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch mood entries")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// CreateMoodEntry stores a directly selected mood. This is the alternate
// path into the same storage contract as the questionnaire.
func (h *Handler) CreateMoodEntry(w http.ResponseWriter, r *http.Request) {
	user := h.requireAuth(w, r)
	if user == nil {
		return
	}

	var req CreateMoodEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	moodType, ok := models.ParseMoodType(req.MoodType)
	if !ok {
		writeValidationError(w, map[string]string{"moodType": "Unknown mood type"})
		return
	}

	date := h.Now()
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			writeValidationError(w, map[string]string{"date": "Invalid date format"})
			return
		}
		date = parsed
	}

	entry, err := h.Store.CreateMoodEntry(storage.CreateMoodEntryParams{
		UserID:   user.ID,
		MoodType: moodType,
		Notes:    req.Notes,
		Date:     date,
	})
	if err != nil {
		log.Printf("Failed to create mood entry: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create mood entry")
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// GetQuestionnaire returns the question table the client renders from, so
// submitted option ids always match what the classifier scores.
func (h *Handler) GetQuestionnaire(w http.ResponseWriter, r *http.Request) {
	if h.requireAuth(w, r) == nil {
		return
	}
	writeJSON(w, http.StatusOK, mood.Questions)
}

type QuestionnaireRequest struct {
	// Answers holds one option id per question, positionally.
	Answers []string `json:"answers"`
}

type QuestionnaireBreakdown struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

type QuestionnaireResponse struct {
	Entry     *models.MoodEntry      `json:"entry"`
	MoodType  models.MoodType        `json:"moodType"`
	Breakdown QuestionnaireBreakdown `json:"breakdown"`
	Analysis  string                 `json:"analysis"`
}

// SubmitQuestionnaire classifies a full answer set and stores the resulting
// entry. Partial answer sets are rejected, never classified.
func (h *Handler) SubmitQuestionnaire(w http.ResponseWriter, r *http.Request) {
	user := h.requireAuth(w, r)
	if user == nil {
		return
	}

	var req QuestionnaireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tally, err := mood.TallyAnswers(req.Answers)
	if err != nil {
		if errors.Is(err, mood.ErrIncomplete) {
			writeError(w, http.StatusBadRequest, "Questionnaire incomplete: please answer every question")
			return
		}
		writeValidationError(w, map[string]string{"answers": err.Error()})
		return
	}

	moodType, err := mood.Classify(tally)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Questionnaire incomplete: please answer every question")
		return
	}

	now := h.Now()
	entry, err := h.Store.CreateMoodEntry(storage.CreateMoodEntryParams{
		UserID:   user.ID,
		MoodType: moodType,
		Notes:    mood.Notes(tally, now),
		Date:     now,
	})
	if err != nil {
		log.Printf("Failed to create mood entry: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create mood entry")
		return
	}

	positive, neutral, negative := tally.Rounded()
	writeJSON(w, http.StatusCreated, QuestionnaireResponse{
		Entry:    entry,
		MoodType: moodType,
		Breakdown: QuestionnaireBreakdown{
			Positive: positive,
			Neutral:  neutral,
			Negative: negative,
		},
		Analysis: mood.Analysis(tally),
	})
}
