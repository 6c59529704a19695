package database

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"
)

var PostgresDB *sql.DB

// ConnectPostgres connects to PostgreSQL and bootstraps the schema.
func ConnectPostgres(postgresURI string) error {
	var err error

	PostgresDB, err = sql.Open("postgres", postgresURI)
	if err != nil {
		return err
	}

	// Connection pool settings
	PostgresDB.SetMaxOpenConns(25)
	PostgresDB.SetMaxIdleConns(5)
	PostgresDB.SetConnMaxLifetime(5 * time.Minute)

	if err = PostgresDB.Ping(); err != nil {
		return err
	}

	log.Println("✅ Connected to PostgreSQL")

	if err = InitPostgresTables(); err != nil {
		return err
	}

	return nil
}

// InitPostgresTables creates all necessary tables if they don't exist
func InitPostgresTables() error {
	queries := []string{
		// Users table
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			gender VARCHAR(10) NOT NULL,
			last_menstrual_cycle DATE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		// Mood entries table (append-only)
		`CREATE TABLE IF NOT EXISTS mood_entries (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			mood_type VARCHAR(20) NOT NULL,
			notes TEXT,
			date TIMESTAMP NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		// Menstrual cycles table (female users only; gate enforced at the handlers)
		`CREATE TABLE IF NOT EXISTS menstrual_cycles (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			start_date DATE NOT NULL,
			end_date DATE,
			symptoms TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		// Recommendations catalog (seeded at startup, read-only)
		`CREATE TABLE IF NOT EXISTS recommendations (
			id BIGSERIAL PRIMARY KEY,
			type VARCHAR(20) NOT NULL,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			thumbnail TEXT,
			description TEXT,
			duration VARCHAR(20),
			mood_target VARCHAR(20) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		// Indexes
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_lower ON users(LOWER(email))`,
		`CREATE INDEX IF NOT EXISTS idx_mood_entries_user_id ON mood_entries(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_mood_entries_date ON mood_entries(date)`,
		`CREATE INDEX IF NOT EXISTS idx_menstrual_cycles_user_id ON menstrual_cycles(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_menstrual_cycles_start_date ON menstrual_cycles(start_date)`,
		`CREATE INDEX IF NOT EXISTS idx_recommendations_mood_target ON recommendations(mood_target)`,
		`CREATE INDEX IF NOT EXISTS idx_recommendations_type_mood ON recommendations(type, mood_target)`,
	}

	for _, query := range queries {
		if _, err := PostgresDB.Exec(query); err != nil {
			return err
		}
	}

	log.Println("✅ PostgreSQL tables initialized")
	return nil
}

// DisconnectPostgres closes the PostgreSQL connection
func DisconnectPostgres() error {
	if PostgresDB != nil {
		return PostgresDB.Close()
	}
	return nil
}
