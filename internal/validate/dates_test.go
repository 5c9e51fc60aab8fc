package validate

import (
	"testing"
	"time"

	"github.com/trends-intl/internal/model"
)

func sampleRecords() []model.TrendRecord {
	return []model.TrendRecord{
		{RegionName: "Bavaria", WeekRaw: "2024-03-04", RefreshDateRaw: "2024-03-10"},
		{RegionName: "Saxony", WeekRaw: "2024-13-40", RefreshDateRaw: "2024-03-10"},
		{RegionName: "Hesse", WeekRaw: "", RefreshDateRaw: "not a date"},
	}
}

func TestDates(t *testing.T) {
	records := sampleRecords()

	reports, err := Dates(records, []string{"week", "refresh_date"}, DefaultDateLayout)
	if err != nil {
		t.Fatalf("Dates failed: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("row count changed: got %d, want 3", len(records))
	}

	// Valid value parses to the expected day.
	want := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	if !records[0].Week.Valid || !records[0].Week.Time.Equal(want) {
		t.Errorf("week[0] = %+v, want valid %v", records[0].Week, want)
	}

	// Calendar-impossible and empty values become invalid markers, and the
	// rows are retained.
	if records[1].Week.Valid {
		t.Error("2024-13-40 should be marked invalid")
	}
	if records[2].Week.Valid {
		t.Error("empty string should be marked invalid")
	}

	if len(reports) != 2 {
		t.Fatalf("got %d reports, want 2", len(reports))
	}

	weekReport := reports[0]
	if weekReport.Column != "week" {
		t.Fatalf("first report column = %s, want week", weekReport.Column)
	}
	if weekReport.AllValid {
		t.Error("week report should not be all valid")
	}
	if len(weekReport.Invalid) != 2 {
		t.Fatalf("week report has %d invalid entries, want 2", len(weekReport.Invalid))
	}
	if weekReport.Invalid[0].Row != 1 || weekReport.Invalid[0].Value != "2024-13-40" {
		t.Errorf("unexpected first invalid entry: %+v", weekReport.Invalid[0])
	}
	if weekReport.Invalid[1].Row != 2 || weekReport.Invalid[1].Value != "" {
		t.Errorf("unexpected second invalid entry: %+v", weekReport.Invalid[1])
	}

	refreshReport := reports[1]
	if refreshReport.AllValid {
		t.Error("refresh_date report should not be all valid")
	}
	if len(refreshReport.Invalid) != 1 {
		t.Errorf("refresh_date report has %d invalid entries, want 1", len(refreshReport.Invalid))
	}
}

func TestDatesAllValid(t *testing.T) {
	records := []model.TrendRecord{
		{WeekRaw: "2024-01-01", RefreshDateRaw: "2024-01-02"},
	}
	reports, err := Dates(records, []string{"week"}, "")
	if err != nil {
		t.Fatalf("Dates failed: %v", err)
	}
	if !reports[0].AllValid {
		t.Error("expected all valid")
	}
	if len(reports[0].Invalid) != 0 {
		t.Errorf("expected no invalid entries, got %d", len(reports[0].Invalid))
	}
}

func TestDatesUnknownColumn(t *testing.T) {
	records := sampleRecords()
	if _, err := Dates(records, []string{"created_at"}, DefaultDateLayout); err == nil {
		t.Fatal("expected error for unknown column")
	}
}

// Re-running the validator over already-validated records must not change
// the outcome: parsing always starts from the raw value.
func TestDatesRerun(t *testing.T) {
	records := sampleRecords()

	if _, err := Dates(records, []string{"week"}, DefaultDateLayout); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	first := make([]model.Date, len(records))
	for i, r := range records {
		first[i] = r.Week
	}

	if _, err := Dates(records, []string{"week"}, DefaultDateLayout); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	for i, r := range records {
		if r.Week != first[i] {
			t.Errorf("row %d changed between runs: %+v != %+v", i, r.Week, first[i])
		}
	}
}
