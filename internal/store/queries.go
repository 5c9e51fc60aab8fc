package store

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/trends-intl/internal/overrides"
)

// CountryRow is one country present in the store.
type CountryRow struct {
	CountryCode string `json:"country_code"`
	CountryName string `json:"country_name"`
}

// TrendRow is one joined dashboard row, rank 1 through 5.
type TrendRow struct {
	CountryName     string     `json:"country_name"`
	CountryCode     string     `json:"country_code"`
	RegionName      string     `json:"region_name"`
	RegionNameFinal string     `json:"region_name_final"`
	Term            string     `json:"term"`
	Translate       string     `json:"translate"`
	Week            *time.Time `json:"week"`
	Rank            int        `json:"rank"`
}

// TopTerm is the most frequent rank-1 terms for one country. Ties are
// reported together, sorted, as the original dashboard does.
type TopTerm struct {
	CountryName string   `json:"country_name"`
	Terms       []string `json:"top_terms"`
	Count       int      `json:"count"`
}

// Stats is the overall row counts for the stats endpoint.
type Stats struct {
	Trends    int `json:"trends"`
	Countries int `json:"countries"`
	Regions   int `json:"regions"`
	Terms     int `json:"terms"`
}

// Countries lists countries present in the store, sorted by name.
func (s *Store) Countries() ([]CountryRow, error) {
	rows, err := s.db.Query(`
		SELECT country_code, country_name
		FROM countries
		ORDER BY country_name
	`)
	if err != nil {
		return nil, fmt.Errorf("countries query failed: %w", err)
	}
	defer rows.Close()

	var out []CountryRow
	for rows.Next() {
		var c CountryRow
		if err := rows.Scan(&c.CountryCode, &c.CountryName); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// TrendsForCountry returns the joined rank 1-5 rows for one country,
// optionally restricted to a set of weeks.
func (s *Store) TrendsForCountry(countryCode string, weeks []time.Time) ([]TrendRow, error) {
	query := `
		SELECT
			c.country_name,
			c.country_code,
			r.region_name,
			r.region_name_final,
			t.term,
			t.translate,
			tr.week,
			tr.rank
		FROM trends tr
		JOIN countries c ON tr.country_code = c.country_code
		JOIN regions r ON tr.region_name = r.region_name AND tr.country_code = r.country_code
		JOIN terms t ON tr.term = t.term
		WHERE tr.rank BETWEEN 1 AND 5
		  AND c.country_code = $1
	`
	args := []interface{}{countryCode}

	if len(weeks) > 0 {
		placeholders := make([]string, len(weeks))
		for i, w := range weeks {
			placeholders[i] = fmt.Sprintf("$%d", i+2)
			args = append(args, w)
		}
		query += " AND tr.week IN (" + strings.Join(placeholders, ", ") + ")"
	}
	query += " ORDER BY tr.week, tr.rank"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("trends query failed: %w", err)
	}
	defer rows.Close()

	var out []TrendRow
	for rows.Next() {
		var row TrendRow
		var week sql.NullTime
		var translate sql.NullString
		if err := rows.Scan(
			&row.CountryName, &row.CountryCode,
			&row.RegionName, &row.RegionNameFinal,
			&row.Term, &translate, &week, &row.Rank,
		); err != nil {
			return nil, err
		}
		if week.Valid {
			row.Week = &week.Time
		}
		row.Translate = translate.String
		out = append(out, row)
	}
	return out, rows.Err()
}

// RegionLabels returns the distinct final region labels observed for one
// country, sorted. This is the candidate set for interactive resolution.
func (s *Store) RegionLabels(countryCode string) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT DISTINCT region_name_final
		FROM regions
		WHERE country_code = $1 AND region_name_final <> ''
		ORDER BY region_name_final
	`, countryCode)
	if err != nil {
		return nil, fmt.Errorf("region labels query failed: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, err
		}
		out = append(out, label)
	}
	return out, rows.Err()
}

// TopRankOneTerms finds, per country, the most frequent rank-1 term(s),
// sorted by frequency descending.
func (s *Store) TopRankOneTerms() ([]TopTerm, error) {
	rows, err := s.db.Query(`
		SELECT c.country_name, t.translate, COUNT(*) AS cnt
		FROM trends tr
		JOIN countries c ON tr.country_code = c.country_code
		JOIN terms t ON tr.term = t.term
		WHERE tr.rank = 1
		GROUP BY c.country_name, t.translate
	`)
	if err != nil {
		return nil, fmt.Errorf("top terms query failed: %w", err)
	}
	defer rows.Close()

	type termCount struct {
		term  string
		count int
	}
	byCountry := make(map[string][]termCount)
	for rows.Next() {
		var country string
		var translate sql.NullString
		var count int
		if err := rows.Scan(&country, &translate, &count); err != nil {
			return nil, err
		}
		byCountry[country] = append(byCountry[country], termCount{translate.String, count})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var out []TopTerm
	for country, counts := range byCountry {
		max := 0
		for _, tc := range counts {
			if tc.count > max {
				max = tc.count
			}
		}
		top := TopTerm{CountryName: country, Count: max}
		for _, tc := range counts {
			if tc.count == max {
				top.Terms = append(top.Terms, tc.term)
			}
		}
		sort.Strings(top.Terms)
		out = append(out, top)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].CountryName < out[j].CountryName
	})
	return out, nil
}

// TermCountries returns the countries where a final (grouped) term appeared
// in the rankings, with occurrence counts. Grouping applies the term table
// in memory: the store keeps raw translated terms.
func (s *Store) TermCountries(finalTerm string, terms *overrides.TermTable) (map[string]int, error) {
	rows, err := s.db.Query(`
		SELECT c.country_name, t.translate
		FROM trends tr
		JOIN countries c ON tr.country_code = c.country_code
		JOIN terms t ON tr.term = t.term
	`)
	if err != nil {
		return nil, fmt.Errorf("term countries query failed: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var country string
		var translate sql.NullString
		if err := rows.Scan(&country, &translate); err != nil {
			return nil, err
		}
		if terms.Final(translate.String) == finalTerm {
			counts[country]++
		}
	}
	return counts, rows.Err()
}

// Stats returns overall table counts.
func (s *Store) Stats() (Stats, error) {
	var stats Stats
	counts := []struct {
		query string
		dest  *int
	}{
		{"SELECT COUNT(*) FROM trends", &stats.Trends},
		{"SELECT COUNT(*) FROM countries", &stats.Countries},
		{"SELECT COUNT(*) FROM regions", &stats.Regions},
		{"SELECT COUNT(*) FROM terms", &stats.Terms},
	}
	for _, c := range counts {
		if err := s.db.QueryRow(c.query).Scan(c.dest); err != nil {
			return stats, fmt.Errorf("stats query failed: %w", err)
		}
	}
	return stats, nil
}
