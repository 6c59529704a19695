package models

import "time"

// Gender is the closed set of gender values accepted at registration.
// Menstrual cycle features are gated on GenderFemale.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ParseGender returns the Gender for s, or false if s is not a known value.
func ParseGender(s string) (Gender, bool) {
	switch Gender(s) {
	case GenderMale, GenderFemale:
		return Gender(s), true
	}
	return "", false
}

type User struct {
	ID                 int64      `json:"id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	PasswordHash       string     `json:"-"` // never crosses the HTTP boundary
	Gender             Gender     `json:"gender"`
	LastMenstrualCycle *time.Time `json:"lastMenstrualCycle,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}
