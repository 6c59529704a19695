package storage

import (
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/moodora/moodora-backend/internal/models"
)

// PostgresStore backs the record store with PostgreSQL. Ids come from
// BIGSERIAL sequences, so allocation is monotonic and never reused. Tables
// are created by database.InitPostgresTables at connect time.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore wraps db and seeds the recommendation catalog if the
// table is empty.
func NewPostgresStore(db *sql.DB) (*PostgresStore, error) {
	s := &PostgresStore{db: db}
	if err := s.seedRecommendations(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) seedRecommendations() error {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM recommendations`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, rec := range seedCatalog() {
		_, err := s.db.Exec(`
			INSERT INTO recommendations (type, title, content, thumbnail, description, duration, mood_target)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, rec.Type, rec.Title, rec.Content, nullString(rec.Thumbnail), nullString(rec.Description),
			nullString(rec.Duration), rec.MoodTarget)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *PostgresStore) GetUser(id int64) (*models.User, error) {
	return s.scanUser(s.db.QueryRow(`
		SELECT id, name, email, password_hash, gender, last_menstrual_cycle, created_at
		FROM users WHERE id = $1
	`, id))
}

func (s *PostgresStore) GetUserByEmail(email string) (*models.User, error) {
	return s.scanUser(s.db.QueryRow(`
		SELECT id, name, email, password_hash, gender, last_menstrual_cycle, created_at
		FROM users WHERE LOWER(email) = LOWER($1)
	`, email))
}

func (s *PostgresStore) scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	var gender string
	var lastCycle sql.NullTime
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &gender, &lastCycle, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u.Gender = models.Gender(gender)
	if lastCycle.Valid {
		t := lastCycle.Time
		u.LastMenstrualCycle = &t
	}
	return &u, nil
}

func (s *PostgresStore) CreateUser(p CreateUserParams) (*models.User, error) {
	// Check-then-insert mirrors the signup flow; the unique index on
	// LOWER(email) closes the race.
	var existing int64
	err := s.db.QueryRow(`SELECT id FROM users WHERE LOWER(email) = LOWER($1)`, p.Email).Scan(&existing)
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	u := models.User{
		Name:               p.Name,
		Email:              p.Email,
		PasswordHash:       p.PasswordHash,
		Gender:             p.Gender,
		LastMenstrualCycle: p.LastMenstrualCycle,
	}
	err = s.db.QueryRow(`
		INSERT INTO users (name, email, password_hash, gender, last_menstrual_cycle)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, p.Name, p.Email, p.PasswordHash, p.Gender, nullTimePtr(p.LastMenstrualCycle)).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &u, nil
}

func (s *PostgresStore) CreateMoodEntry(p CreateMoodEntryParams) (*models.MoodEntry, error) {
	e := models.MoodEntry{
		UserID:   p.UserID,
		MoodType: p.MoodType,
		Notes:    p.Notes,
		Date:     p.Date,
	}
	err := s.db.QueryRow(`
		INSERT INTO mood_entries (user_id, mood_type, notes, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, p.UserID, p.MoodType, nullString(p.Notes), p.Date).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *PostgresStore) GetMoodEntries(userID int64) ([]models.MoodEntry, error) {
	return s.queryMoodEntries(`
		SELECT id, user_id, mood_type, notes, date, created_at
		FROM mood_entries WHERE user_id = $1
		ORDER BY date DESC, id DESC
	`, userID)
}

func (s *PostgresStore) GetMoodEntryByID(id int64) (*models.MoodEntry, error) {
	row := s.db.QueryRow(`
		SELECT id, user_id, mood_type, notes, date, created_at
		FROM mood_entries WHERE id = $1
	`, id)
	var e models.MoodEntry
	var notes sql.NullString
	err := row.Scan(&e.ID, &e.UserID, &e.MoodType, &notes, &e.Date, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	e.Notes = notes.String
	return &e, nil
}

func (s *PostgresStore) GetMoodEntriesByDate(userID int64, date time.Time) ([]models.MoodEntry, error) {
	return s.queryMoodEntries(`
		SELECT id, user_id, mood_type, notes, date, created_at
		FROM mood_entries WHERE user_id = $1 AND date::date = $2::date
		ORDER BY id ASC
	`, userID, date)
}

func (s *PostgresStore) GetMoodEntriesByDateRange(userID int64, start, end time.Time) ([]models.MoodEntry, error) {
	return s.queryMoodEntries(`
		SELECT id, user_id, mood_type, notes, date, created_at
		FROM mood_entries WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC, id ASC
	`, userID, start, end)
}

func (s *PostgresStore) queryMoodEntries(query string, args ...interface{}) ([]models.MoodEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.MoodEntry, 0)
	for rows.Next() {
		var e models.MoodEntry
		var notes sql.NullString
		if err := rows.Scan(&e.ID, &e.UserID, &e.MoodType, &notes, &e.Date, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Notes = notes.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *PostgresStore) CreateMenstrualCycle(p CreateMenstrualCycleParams) (*models.MenstrualCycle, error) {
	c := models.MenstrualCycle{
		UserID:    p.UserID,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Symptoms:  p.Symptoms,
	}
	err := s.db.QueryRow(`
		INSERT INTO menstrual_cycles (user_id, start_date, end_date, symptoms)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, p.UserID, p.StartDate, nullTimePtr(p.EndDate), nullString(p.Symptoms)).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *PostgresStore) GetMenstrualCycles(userID int64) ([]models.MenstrualCycle, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, start_date, end_date, symptoms, created_at
		FROM menstrual_cycles WHERE user_id = $1
		ORDER BY start_date DESC, id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cycles := make([]models.MenstrualCycle, 0)
	for rows.Next() {
		c, err := scanCycle(rows)
		if err != nil {
			return nil, err
		}
		cycles = append(cycles, c)
	}
	return cycles, rows.Err()
}

func (s *PostgresStore) GetMenstrualCycleByID(id int64) (*models.MenstrualCycle, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, start_date, end_date, symptoms, created_at
		FROM menstrual_cycles WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNotFound
	}
	c, err := scanCycle(rows)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCycle(rows *sql.Rows) (models.MenstrualCycle, error) {
	var c models.MenstrualCycle
	var endDate sql.NullTime
	var symptoms sql.NullString
	if err := rows.Scan(&c.ID, &c.UserID, &c.StartDate, &endDate, &symptoms, &c.CreatedAt); err != nil {
		return models.MenstrualCycle{}, err
	}
	if endDate.Valid {
		t := endDate.Time
		c.EndDate = &t
	}
	c.Symptoms = symptoms.String
	return c, nil
}

func (s *PostgresStore) GetRecommendationsByMood(mood models.MoodType) ([]models.Recommendation, error) {
	return s.queryRecommendations(`
		SELECT id, type, title, content, thumbnail, description, duration, mood_target, created_at
		FROM recommendations WHERE mood_target = $1
		ORDER BY id ASC
	`, mood)
}

func (s *PostgresStore) GetRecommendationsByType(recType models.RecommendationType, mood models.MoodType) ([]models.Recommendation, error) {
	return s.queryRecommendations(`
		SELECT id, type, title, content, thumbnail, description, duration, mood_target, created_at
		FROM recommendations WHERE type = $1 AND mood_target = $2
		ORDER BY id ASC
	`, recType, mood)
}

func (s *PostgresStore) queryRecommendations(query string, args ...interface{}) ([]models.Recommendation, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recs := make([]models.Recommendation, 0)
	for rows.Next() {
		var r models.Recommendation
		var thumbnail, description, duration sql.NullString
		if err := rows.Scan(&r.ID, &r.Type, &r.Title, &r.Content, &thumbnail, &description,
			&duration, &r.MoodTarget, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.Thumbnail = thumbnail.String
		r.Description = description.String
		r.Duration = duration.String
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTimePtr(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// isUniqueViolation reports whether err is Postgres error 23505.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
