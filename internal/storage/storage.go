// Package storage defines the record store contract and its backends.
// MemoryStore is the default; PostgresStore is used when POSTGRES_URI is set.
package storage

import (
	"errors"
	"time"

	"github.com/moodora/moodora-backend/internal/models"
)

var (
	// ErrNotFound means the record does not exist. Empty list results are
	// not errors; only single-record lookups return this.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail means a user with that email already exists.
	ErrDuplicateEmail = errors.New("email already registered")
)

// CreateUserParams carries the fields for a new user. The store assigns the
// id and creation time.
type CreateUserParams struct {
	Name               string
	Email              string
	PasswordHash       string
	Gender             models.Gender
	LastMenstrualCycle *time.Time
}

type CreateMoodEntryParams struct {
	UserID   int64
	MoodType models.MoodType
	Notes    string
	Date     time.Time
}

type CreateMenstrualCycleParams struct {
	UserID    int64
	StartDate time.Time
	EndDate   *time.Time
	Symptoms  string
}

// Store is the record store. Identity allocation is per entity kind,
// monotonically increasing from 1; ids are never reused.
type Store interface {
	GetUser(id int64) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	CreateUser(p CreateUserParams) (*models.User, error)

	CreateMoodEntry(p CreateMoodEntryParams) (*models.MoodEntry, error)
	GetMoodEntries(userID int64) ([]models.MoodEntry, error)
	GetMoodEntryByID(id int64) (*models.MoodEntry, error)
	GetMoodEntriesByDate(userID int64, date time.Time) ([]models.MoodEntry, error)
	// GetMoodEntriesByDateRange returns entries with start <= date <= end,
	// ascending by date.
	GetMoodEntriesByDateRange(userID int64, start, end time.Time) ([]models.MoodEntry, error)

	CreateMenstrualCycle(p CreateMenstrualCycleParams) (*models.MenstrualCycle, error)
	// GetMenstrualCycles returns the user's cycles sorted by start date
	// descending (most recent first).
	GetMenstrualCycles(userID int64) ([]models.MenstrualCycle, error)
	GetMenstrualCycleByID(id int64) (*models.MenstrualCycle, error)

	GetRecommendationsByMood(mood models.MoodType) ([]models.Recommendation, error)
	GetRecommendationsByType(recType models.RecommendationType, mood models.MoodType) ([]models.Recommendation, error)
}
