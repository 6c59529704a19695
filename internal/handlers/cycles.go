package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/moodora/moodora-backend/internal/cycle"
	"github.com/moodora/moodora-backend/internal/models"
	"github.com/moodora/moodora-backend/internal/storage"
)

type CreateCycleRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate,omitempty"`
	Symptoms  string `json:"symptoms,omitempty"`
}

// ListMenstrualCycles returns the caller's cycles, most recent first.
func (h *Handler) ListMenstrualCycles(w http.ResponseWriter, r *http.Request) {
	user := h.requireFemale(w, r)
	if user == nil {
		return
	}

	cycles, err := h.Store.GetMenstrualCycles(user.ID)
	if err != nil {
		log.Printf("Failed to fetch menstrual cycles: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch menstrual cycles")
		return
	}
	writeJSON(w, http.StatusOK, cycles)
}

func (h *Handler) CreateMenstrualCycle(w http.ResponseWriter, r *http.Request) {
	user := h.requireFemale(w, r)
	if user == nil {
		return
	}

	var req CreateCycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.StartDate == "" {
		writeValidationError(w, map[string]string{"startDate": "Start date is required"})
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		writeValidationError(w, map[string]string{"startDate": "Invalid date format"})
		return
	}

	var end *time.Time
	if req.EndDate != "" {
		parsed, err := parseDate(req.EndDate)
		if err != nil {
			writeValidationError(w, map[string]string{"endDate": "Invalid date format"})
			return
		}
		end = &parsed
	}

	created, err := h.Store.CreateMenstrualCycle(storage.CreateMenstrualCycleParams{
		UserID:    user.ID,
		StartDate: start,
		EndDate:   end,
		Symptoms:  req.Symptoms,
	})
	if err != nil {
		log.Printf("Failed to create menstrual cycle: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create menstrual cycle")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

type PhaseAnalysisResponse struct {
	HasData         bool             `json:"hasData"`
	Phase           *cycle.PhaseInfo `json:"phase,omitempty"`
	DayOfCycle      int              `json:"dayOfCycle,omitempty"`
	PercentComplete float64          `json:"percentComplete,omitempty"`
	DominantMood    models.MoodType  `json:"dominantMood,omitempty"`
	EntryCount      int              `json:"entryCount,omitempty"`
}

// PhaseAnalysis reports where the caller is in her current cycle and which
// mood dominated past entries that fell in the same phase. With no recorded
// cycles there is nothing to anchor the estimate, so hasData is false.
func (h *Handler) PhaseAnalysis(w http.ResponseWriter, r *http.Request) {
	user := h.requireFemale(w, r)
	if user == nil {
		return
	}

	cycles, err := h.Store.GetMenstrualCycles(user.ID)
	if err != nil {
		log.Printf("Failed to fetch menstrual cycles: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch menstrual cycles")
		return
	}
	if len(cycles) == 0 {
		writeJSON(w, http.StatusOK, PhaseAnalysisResponse{HasData: false})
		return
	}

	est := cycle.EstimatePhase(h.Now(), cycles[0].StartDate)

	entries, err := h.Store.GetMoodEntries(user.ID)
	if err != nil {
		log.Printf("Failed to fetch mood entries: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch mood entries")
		return
	}

	resp := PhaseAnalysisResponse{
		HasData:         true,
		Phase:           &est.Phase,
		DayOfCycle:      est.DayOfCycle,
		PercentComplete: est.PercentComplete,
	}
	if dominant, count := cycle.DominantMood(entries, cycles, est.Phase.Phase); count > 0 {
		resp.DominantMood = dominant
		resp.EntryCount = count
	}
	writeJSON(w, http.StatusOK, resp)
}
