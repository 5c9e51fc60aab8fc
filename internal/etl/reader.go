package etl

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/trends-intl/internal/model"
)

// requiredColumns is the precondition on the source export. A missing column
// is a fatal configuration error, not something to paper over.
var requiredColumns = []string{
	"term", "translate", "country_name", "country_code",
	"region_name", "week", "refresh_date", "score", "rank",
}

// ReadTrends reads the raw trends CSV into records. Rows with a malformed
// rank are logged and skipped; date fields are kept raw for the validator.
func ReadTrends(path string) ([]model.TrendRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trends CSV: %w", err)
	}
	defer file.Close()

	return ReadTrendsFrom(file)
}

// ReadTrendsFrom parses trend records from a reader.
func ReadTrendsFrom(r io.Reader) ([]model.TrendRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columnMap := make(map[string]int)
	for i, col := range header {
		columnMap[strings.ToLower(strings.TrimSpace(col))] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := columnMap[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("trends CSV missing required columns: %s", strings.Join(missing, ", "))
	}

	var records []model.TrendRecord
	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			log.Printf("Error reading CSV record %d: %v", rowNum, err)
			continue
		}

		rank, err := strconv.Atoi(getColumnValue(row, columnMap, "rank"))
		if err != nil || rank < 1 {
			log.Printf("Skipping row %d: invalid rank %q", rowNum, getColumnValue(row, columnMap, "rank"))
			continue
		}

		score, err := strconv.ParseFloat(getColumnValue(row, columnMap, "score"), 64)
		if err != nil {
			score = 0
		}

		records = append(records, model.TrendRecord{
			Term:           getColumnValue(row, columnMap, "term"),
			Translate:      getColumnValue(row, columnMap, "translate"),
			CountryName:    getColumnValue(row, columnMap, "country_name"),
			CountryCode:    getColumnValue(row, columnMap, "country_code"),
			RegionName:     getColumnValue(row, columnMap, "region_name"),
			WeekRaw:        getColumnValue(row, columnMap, "week"),
			RefreshDateRaw: getColumnValue(row, columnMap, "refresh_date"),
			Score:          score,
			Rank:           rank,
		})
	}

	return records, nil
}

func getColumnValue(record []string, columnMap map[string]int, columnName string) string {
	if idx, exists := columnMap[columnName]; exists && idx < len(record) {
		return strings.TrimSpace(record[idx])
	}
	return ""
}
