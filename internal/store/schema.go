package store

import (
	"database/sql"
	"fmt"
)

// Store persists enriched trend records into the normalized relational
// schema and serves the dashboard's read queries.
type Store struct {
	db *sql.DB
}

// New creates a store over an open database connection.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateSchema creates the four normalized tables plus the load-run ledger.
// Idempotent; safe to run on every start.
func (s *Store) CreateSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS countries (
			country_code TEXT PRIMARY KEY,
			country_name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS regions (
			region_name TEXT NOT NULL,
			country_code TEXT NOT NULL REFERENCES countries(country_code),
			region_name_cleaned TEXT NOT NULL,
			region_name_final TEXT NOT NULL,
			PRIMARY KEY (region_name, country_code)
		)`,
		`CREATE TABLE IF NOT EXISTS terms (
			term TEXT PRIMARY KEY,
			translate TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS trends (
			trend_id BIGSERIAL PRIMARY KEY,
			term TEXT NOT NULL REFERENCES terms(term),
			country_code TEXT NOT NULL REFERENCES countries(country_code),
			region_name TEXT NOT NULL,
			week DATE,
			refresh_date DATE,
			score DOUBLE PRECISION,
			rank INTEGER NOT NULL CHECK (rank >= 1),
			FOREIGN KEY (region_name, country_code) REFERENCES regions(region_name, country_code)
		)`,
		`CREATE TABLE IF NOT EXISTS load_runs (
			run_id UUID PRIMARY KEY,
			started_at TIMESTAMPTZ NOT NULL,
			finished_at TIMESTAMPTZ,
			row_count INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS trends_country_rank_idx ON trends (country_code, rank)`,
		`CREATE INDEX IF NOT EXISTS regions_final_idx ON regions (country_code, region_name_final)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
