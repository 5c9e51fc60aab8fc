package validate

import (
	"fmt"
	"time"

	"github.com/trends-intl/internal/model"
)

// DefaultDateLayout is the single fixed convention the source export uses.
// Locale-ambiguous formats are never auto-detected per row.
const DefaultDateLayout = "2006-01-02"

// InvalidValue records one value that failed to parse.
type InvalidValue struct {
	Row   int    `json:"row"`
	Value string `json:"value"`
}

// Report summarises date validation for one column.
type Report struct {
	Column   string         `json:"column"`
	AllValid bool           `json:"all_valid"`
	Invalid  []InvalidValue `json:"invalid_entries"`
}

// Dates coerces the named date columns of every record using one fixed
// layout. A value that cannot be parsed becomes an invalid marker on the
// record, never an error and never a dropped row. Records are updated in
// place; row count is preserved by construction.
//
// Naming a column that does not exist is a structural error.
func Dates(records []model.TrendRecord, columns []string, layout string) ([]Report, error) {
	if layout == "" {
		layout = DefaultDateLayout
	}

	reports := make([]Report, 0, len(columns))

	for _, col := range columns {
		report := Report{Column: col, AllValid: true}

		for i := range records {
			var raw string
			switch col {
			case "week":
				raw = records[i].WeekRaw
			case "refresh_date":
				raw = records[i].RefreshDateRaw
			default:
				return nil, fmt.Errorf("unknown date column: %s", col)
			}

			parsed := parseDate(raw, layout)
			if !parsed.Valid {
				report.AllValid = false
				report.Invalid = append(report.Invalid, InvalidValue{Row: i, Value: raw})
			}

			switch col {
			case "week":
				records[i].Week = parsed
			case "refresh_date":
				records[i].RefreshDate = parsed
			}
		}

		reports = append(reports, report)
	}

	return reports, nil
}

// parseDate coerces a single value. Empty strings and calendar-impossible
// dates (2024-13-40) both come back as an invalid marker.
func parseDate(raw, layout string) model.Date {
	if raw == "" {
		return model.Date{}
	}
	t, err := time.Parse(layout, raw)
	if err != nil {
		return model.Date{}
	}
	return model.Date{Time: t, Valid: true}
}
