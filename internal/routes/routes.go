package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/moodora/moodora-backend/internal/handlers"
)

// SetupRoutes registers the API surface on r.
func SetupRoutes(r *chi.Mux, h *handlers.Handler) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Get("/user", h.CurrentUser)

		r.Get("/questionnaire", h.GetQuestionnaire)

		r.Get("/mood-entries", h.ListMoodEntries)
		r.Get("/mood-entries/range", h.MoodEntriesByRange)
		r.Post("/mood-entries", h.CreateMoodEntry)
		r.Post("/mood-entries/questionnaire", h.SubmitQuestionnaire)

		r.Get("/recommendations/{moodType}", h.GetRecommendations)

		r.Get("/menstrual-cycles", h.ListMenstrualCycles)
		r.Post("/menstrual-cycles", h.CreateMenstrualCycle)
		r.Get("/menstrual-cycles/phase", h.PhaseAnalysis)
	})
}
