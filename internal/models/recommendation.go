package models

import (
	"strings"
	"time"
)

// RecommendationType categorizes catalog content. Stored uppercase.
type RecommendationType string

const (
	RecommendationVideo    RecommendationType = "VIDEO"
	RecommendationMusic    RecommendationType = "MUSIC"
	RecommendationQuote    RecommendationType = "QUOTE"
	RecommendationActivity RecommendationType = "ACTIVITY"
)

// NormalizeRecommendationType uppercases s so lookups match the stored form.
// Unknown values pass through; they simply never match anything seeded.
func NormalizeRecommendationType(s string) RecommendationType {
	return RecommendationType(strings.ToUpper(strings.TrimSpace(s)))
}

// Recommendation is static catalog content keyed by the mood it targets.
// Seeded at startup, read-only thereafter.
type Recommendation struct {
	ID          int64              `json:"id"`
	Type        RecommendationType `json:"type"`
	Title       string             `json:"title"`
	Content     string             `json:"content"` // URL for videos/music, text for quotes/activities
	Thumbnail   string             `json:"thumbnail,omitempty"`
	Description string             `json:"description,omitempty"`
	Duration    string             `json:"duration,omitempty"`
	MoodTarget  MoodType           `json:"moodTarget"`
	CreatedAt   time.Time          `json:"createdAt"`
}
