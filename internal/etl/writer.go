package etl

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/trends-intl/internal/model"
)

// WriteTrends writes enriched records to a CSV, preserving input order and
// adding the two derived region columns. Invalid dates are written empty.
func WriteTrends(path string, records []model.TrendRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output CSV: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"term", "translate", "country_name", "country_code", "region_name",
		"week", "refresh_date", "score", "rank",
		"region_name_cleaned", "region_name_final",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.Term,
			rec.Translate,
			rec.CountryName,
			rec.CountryCode,
			rec.RegionName,
			formatDate(rec.Week),
			formatDate(rec.RefreshDate),
			strconv.FormatFloat(rec.Score, 'f', -1, 64),
			strconv.Itoa(rec.Rank),
			rec.RegionNameCleaned,
			rec.RegionNameFinal,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return writer.Error()
}

func formatDate(d model.Date) string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format("2006-01-02")
}
