package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moodora/moodora-backend/internal/models"
)

// GetRecommendations returns catalog items targeting the requested mood,
// optionally filtered by content type. An unknown mood is not an error, the
// client just gets an empty list.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	if h.requireAuth(w, r) == nil {
		return
	}

	moodType := models.MoodType(chi.URLParam(r, "moodType"))

	var (
		recs []models.Recommendation
		err  error
	)
	if typeParam := r.URL.Query().Get("type"); typeParam != "" {
		recType := models.NormalizeRecommendationType(typeParam)
		recs, err = h.Store.GetRecommendationsByType(recType, moodType)
	} else {
		recs, err = h.Store.GetRecommendationsByMood(moodType)
	}
	if err != nil {
		log.Printf("Failed to fetch recommendations: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch recommendations")
		return
	}

	if recs == nil {
		recs = []models.Recommendation{}
	}
	writeJSON(w, http.StatusOK, recs)
}
