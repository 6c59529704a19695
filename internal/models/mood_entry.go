package models

import "time"

// MoodType is the closed set of mood labels. Free-form strings exist only at
// the HTTP boundary; everything past the handlers works with this type.
type MoodType string

const (
	MoodVeryHappy MoodType = "very_happy"
	MoodHappy     MoodType = "happy"
	MoodNeutral   MoodType = "neutral"
	MoodSad       MoodType = "sad"
	MoodVerySad   MoodType = "very_sad"
	MoodAnxious   MoodType = "anxious"
	MoodEnergetic MoodType = "energetic"
)

// MoodTypes lists every known mood label.
var MoodTypes = []MoodType{
	MoodVeryHappy,
	MoodHappy,
	MoodNeutral,
	MoodSad,
	MoodVerySad,
	MoodAnxious,
	MoodEnergetic,
}

// ParseMoodType returns the MoodType for s, or false if s is not a known label.
func ParseMoodType(s string) (MoodType, bool) {
	for _, m := range MoodTypes {
		if MoodType(s) == m {
			return m, true
		}
	}
	return "", false
}

// MoodEntry is a single mood submission. Entries are append-only: never
// mutated, never deleted. Multiple entries per calendar day are allowed.
type MoodEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	MoodType  MoodType  `json:"moodType"`
	Notes     string    `json:"notes,omitempty"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}
