package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trends-intl/internal/model"
)

// LoadRecords loads enriched records into the normalized tables in one
// transaction: dimension upserts first, then fact rows. Either everything
// commits or nothing does. Returns the run ID recorded in load_runs.
func (s *Store) LoadRecords(records []model.TrendRecord) (string, error) {
	if len(records) == 0 {
		return "", fmt.Errorf("empty input: no records to load")
	}

	runID := uuid.New().String()
	started := time.Now().UTC()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	countryStmt, err := tx.Prepare(`
		INSERT INTO countries (country_code, country_name)
		VALUES ($1, $2)
		ON CONFLICT (country_code) DO NOTHING
	`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare countries statement: %w", err)
	}
	defer countryStmt.Close()

	regionStmt, err := tx.Prepare(`
		INSERT INTO regions (region_name, country_code, region_name_cleaned, region_name_final)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (region_name, country_code) DO UPDATE
		SET region_name_cleaned = EXCLUDED.region_name_cleaned,
		    region_name_final = EXCLUDED.region_name_final
	`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare regions statement: %w", err)
	}
	defer regionStmt.Close()

	termStmt, err := tx.Prepare(`
		INSERT INTO terms (term, translate)
		VALUES ($1, $2)
		ON CONFLICT (term) DO NOTHING
	`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare terms statement: %w", err)
	}
	defer termStmt.Close()

	trendStmt, err := tx.Prepare(`
		INSERT INTO trends (term, country_code, region_name, week, refresh_date, score, rank)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare trends statement: %w", err)
	}
	defer trendStmt.Close()

	loaded := 0
	for _, rec := range records {
		if _, err := countryStmt.Exec(rec.CountryCode, rec.CountryName); err != nil {
			return "", fmt.Errorf("failed to upsert country %s: %w", rec.CountryCode, err)
		}
		if _, err := regionStmt.Exec(rec.RegionName, rec.CountryCode, rec.RegionNameCleaned, rec.RegionNameFinal); err != nil {
			return "", fmt.Errorf("failed to upsert region %s/%s: %w", rec.CountryCode, rec.RegionName, err)
		}
		if _, err := termStmt.Exec(rec.Term, rec.Translate); err != nil {
			return "", fmt.Errorf("failed to upsert term %s: %w", rec.Term, err)
		}
		if _, err := trendStmt.Exec(
			rec.Term, rec.CountryCode, rec.RegionName,
			nullableDate(rec.Week), nullableDate(rec.RefreshDate),
			rec.Score, rec.Rank,
		); err != nil {
			return "", fmt.Errorf("failed to insert trend row: %w", err)
		}

		loaded++
		if loaded%1000 == 0 {
			fmt.Printf("Loaded %d rows...\n", loaded)
		}
	}

	if _, err := tx.Exec(`
		INSERT INTO load_runs (run_id, started_at, finished_at, row_count)
		VALUES ($1, $2, $3, $4)
	`, runID, started, time.Now().UTC(), loaded); err != nil {
		return "", fmt.Errorf("failed to record load run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit load: %w", err)
	}

	fmt.Printf("Loaded %d rows (run %s)\n", loaded, runID)
	return runID, nil
}

// nullableDate maps an invalid date to SQL NULL rather than dropping the row.
func nullableDate(d model.Date) interface{} {
	if !d.Valid {
		return nil
	}
	return d.Time
}
