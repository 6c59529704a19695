package storage

import "github.com/moodora/moodora-backend/internal/models"

// seedCatalog is the built-in recommendation catalog, inserted on first run.
// Ids and creation times are assigned by the store.
func seedCatalog() []models.Recommendation {
	return []models.Recommendation{
		{
			Type:        models.RecommendationVideo,
			Title:       "10-Minute Yoga for Stress Relief",
			Content:     "https://www.youtube.com/watch?v=qiKJRoX_2uo",
			Thumbnail:   "https://img.youtube.com/vi/qiKJRoX_2uo/hqdefault.jpg",
			Description: "This gentle yoga session helps calm your mind and release tension",
			Duration:    "10:15",
			MoodTarget:  models.MoodSad,
		},
		{
			Type:        models.RecommendationVideo,
			Title:       "Guided Meditation for Anxiety",
			Content:     "https://www.youtube.com/watch?v=O-6f5wQXSu8",
			Thumbnail:   "https://img.youtube.com/vi/O-6f5wQXSu8/hqdefault.jpg",
			Description: "A calming meditation to help reduce anxiety and find inner peace",
			Duration:    "8:15",
			MoodTarget:  models.MoodSad,
		},
		{
			Type:        models.RecommendationMusic,
			Title:       "Calming Acoustic Playlist",
			Content:     "https://open.spotify.com/playlist/37i9dQZF1DX4OzrY981I79",
			Description: "Gentle acoustic songs to soothe your mind",
			MoodTarget:  models.MoodSad,
		},
		{
			Type:        models.RecommendationMusic,
			Title:       "Rain & Piano Ambient Mix",
			Content:     "https://open.spotify.com/playlist/37i9dQZF1DX4aYNO8X5RpR",
			Description: "Relaxing piano with background rain sounds",
			MoodTarget:  models.MoodSad,
		},
		{
			Type:        models.RecommendationQuote,
			Title:       "Nelson Mandela Quote",
			Content:     "The greatest glory in living lies not in never falling, but in rising every time we fall.",
			Description: "Nelson Mandela",
			MoodTarget:  models.MoodSad,
		},
		{
			Type:        models.RecommendationQuote,
			Title:       "Albert Camus Quote",
			Content:     "In the midst of winter, I found there was, within me, an invincible summer.",
			Description: "Albert Camus",
			MoodTarget:  models.MoodSad,
		},
		{
			Type:        models.RecommendationActivity,
			Title:       "Journal Your Thoughts",
			Content:     "journaling",
			Description: "Take 10 minutes to write down your thoughts and feelings without judgment",
			MoodTarget:  models.MoodSad,
		},
		{
			Type:        models.RecommendationActivity,
			Title:       "Take a Nature Walk",
			Content:     "walking",
			Description: "Spend 20 minutes walking outside, focusing on the sights and sounds around you",
			MoodTarget:  models.MoodSad,
		},
		{
			Type:        models.RecommendationVideo,
			Title:       "Energy-Boosting Morning Yoga",
			Content:     "https://www.youtube.com/watch?v=UEEsdXn8oG8",
			Thumbnail:   "https://img.youtube.com/vi/UEEsdXn8oG8/hqdefault.jpg",
			Description: "Start your day with this energizing yoga routine",
			Duration:    "15:30",
			MoodTarget:  models.MoodHappy,
		},
		{
			Type:        models.RecommendationMusic,
			Title:       "Feel-Good Indie Folk",
			Content:     "https://open.spotify.com/playlist/37i9dQZF1DX2mFmJUZg4uJ",
			Description: "Upbeat indie folk songs to enhance your good mood",
			MoodTarget:  models.MoodHappy,
		},
		{
			Type:        models.RecommendationVideo,
			Title:       "Mindfulness Meditation",
			Content:     "https://www.youtube.com/watch?v=ZToicYcHIOU",
			Thumbnail:   "https://img.youtube.com/vi/ZToicYcHIOU/hqdefault.jpg",
			Description: "A simple mindfulness practice to center yourself",
			Duration:    "12:00",
			MoodTarget:  models.MoodNeutral,
		},
		{
			Type:        models.RecommendationActivity,
			Title:       "Deep Breathing Exercise",
			Content:     "breathing",
			Description: "Practice 4-7-8 breathing: Inhale for 4 seconds, hold for 7, exhale for 8",
			MoodTarget:  models.MoodAnxious,
		},
		{
			Type:        models.RecommendationQuote,
			Title:       "Brené Brown Quote",
			Content:     "Only when we are brave enough to explore the darkness will we discover the infinite power of our light.",
			Description: "Brené Brown",
			MoodTarget:  models.MoodVerySad,
		},
	}
}
