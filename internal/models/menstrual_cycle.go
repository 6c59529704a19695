package models

import "time"

// MenstrualCycle is recorded by female users. EndDate is optional; an open
// cycle is treated as lasting the average 28 days for phase estimation.
// Overlap between cycles is not enforced.
type MenstrualCycle struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"userId"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Symptoms  string     `json:"symptoms,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
