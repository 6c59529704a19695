package storage

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/moodora/moodora-backend/internal/models"
)

// MemoryStore keeps every record in process memory. It is the default
// backend when no Postgres is configured, and the backend handler tests run
// against. The mutex covers both the maps and the id counters so
// increment-and-read is atomic across concurrent requests.
type MemoryStore struct {
	mu sync.Mutex

	users           map[int64]models.User
	moodEntries     map[int64]models.MoodEntry
	menstrualCycles map[int64]models.MenstrualCycle
	recommendations map[int64]models.Recommendation

	nextUserID           int64
	nextMoodEntryID      int64
	nextMenstrualCycleID int64
	nextRecommendationID int64
}

// NewMemoryStore returns a store pre-seeded with the recommendation catalog.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		users:                make(map[int64]models.User),
		moodEntries:          make(map[int64]models.MoodEntry),
		menstrualCycles:      make(map[int64]models.MenstrualCycle),
		recommendations:      make(map[int64]models.Recommendation),
		nextUserID:           1,
		nextMoodEntryID:      1,
		nextMenstrualCycleID: 1,
		nextRecommendationID: 1,
	}
	for _, rec := range seedCatalog() {
		rec.ID = s.nextRecommendationID
		s.nextRecommendationID++
		rec.CreatedAt = time.Now()
		s.recommendations[rec.ID] = rec
	}
	return s
}

func (s *MemoryStore) GetUser(id int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemoryStore) GetUserByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.findUserByEmail(email)
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

// findUserByEmail must be called with the lock held.
func (s *MemoryStore) findUserByEmail(email string) (models.User, bool) {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *MemoryStore) CreateUser(p CreateUserParams) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.findUserByEmail(p.Email); exists {
		return nil, ErrDuplicateEmail
	}
	u := models.User{
		ID:                 s.nextUserID,
		Name:               p.Name,
		Email:              p.Email,
		PasswordHash:       p.PasswordHash,
		Gender:             p.Gender,
		LastMenstrualCycle: p.LastMenstrualCycle,
		CreatedAt:          time.Now(),
	}
	s.nextUserID++
	s.users[u.ID] = u
	return &u, nil
}

func (s *MemoryStore) CreateMoodEntry(p CreateMoodEntryParams) (*models.MoodEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := models.MoodEntry{
		ID:        s.nextMoodEntryID,
		UserID:    p.UserID,
		MoodType:  p.MoodType,
		Notes:     p.Notes,
		Date:      p.Date,
		CreatedAt: time.Now(),
	}
	s.nextMoodEntryID++
	s.moodEntries[e.ID] = e
	return &e, nil
}

func (s *MemoryStore) GetMoodEntries(userID int64) ([]models.MoodEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.entriesOf(userID, func(e models.MoodEntry) bool { return true })
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Date.Equal(entries[j].Date) {
			return entries[i].ID > entries[j].ID
		}
		return entries[i].Date.After(entries[j].Date)
	})
	return entries, nil
}

func (s *MemoryStore) GetMoodEntryByID(id int64) (*models.MoodEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.moodEntries[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &e, nil
}

func (s *MemoryStore) GetMoodEntriesByDate(userID int64, date time.Time) ([]models.MoodEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	day := date.Format("2006-01-02")
	entries := s.entriesOf(userID, func(e models.MoodEntry) bool {
		return e.Date.Format("2006-01-02") == day
	})
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}

func (s *MemoryStore) GetMoodEntriesByDateRange(userID int64, start, end time.Time) ([]models.MoodEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.entriesOf(userID, func(e models.MoodEntry) bool {
		return !e.Date.Before(start) && !e.Date.After(end)
	})
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Date.Equal(entries[j].Date) {
			return entries[i].ID < entries[j].ID
		}
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries, nil
}

// entriesOf must be called with the lock held.
func (s *MemoryStore) entriesOf(userID int64, keep func(models.MoodEntry) bool) []models.MoodEntry {
	entries := make([]models.MoodEntry, 0)
	for _, e := range s.moodEntries {
		if e.UserID == userID && keep(e) {
			entries = append(entries, e)
		}
	}
	return entries
}

func (s *MemoryStore) CreateMenstrualCycle(p CreateMenstrualCycleParams) (*models.MenstrualCycle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := models.MenstrualCycle{
		ID:        s.nextMenstrualCycleID,
		UserID:    p.UserID,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Symptoms:  p.Symptoms,
		CreatedAt: time.Now(),
	}
	s.nextMenstrualCycleID++
	s.menstrualCycles[c.ID] = c
	return &c, nil
}

func (s *MemoryStore) GetMenstrualCycles(userID int64) ([]models.MenstrualCycle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cycles := make([]models.MenstrualCycle, 0)
	for _, c := range s.menstrualCycles {
		if c.UserID == userID {
			cycles = append(cycles, c)
		}
	}
	sort.Slice(cycles, func(i, j int) bool {
		if cycles[i].StartDate.Equal(cycles[j].StartDate) {
			return cycles[i].ID > cycles[j].ID
		}
		return cycles[i].StartDate.After(cycles[j].StartDate)
	})
	return cycles, nil
}

func (s *MemoryStore) GetMenstrualCycleByID(id int64) (*models.MenstrualCycle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.menstrualCycles[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *MemoryStore) GetRecommendationsByMood(mood models.MoodType) ([]models.Recommendation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filterRecommendations(func(r models.Recommendation) bool {
		return r.MoodTarget == mood
	}), nil
}

func (s *MemoryStore) GetRecommendationsByType(recType models.RecommendationType, mood models.MoodType) ([]models.Recommendation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filterRecommendations(func(r models.Recommendation) bool {
		return r.Type == recType && r.MoodTarget == mood
	}), nil
}

// filterRecommendations must be called with the lock held.
func (s *MemoryStore) filterRecommendations(keep func(models.Recommendation) bool) []models.Recommendation {
	recs := make([]models.Recommendation, 0)
	for _, r := range s.recommendations {
		if keep(r) {
			recs = append(recs, r)
		}
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].ID < recs[j].ID })
	return recs
}
