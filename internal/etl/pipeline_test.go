package etl

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/trends-intl/internal/geo"
	"github.com/trends-intl/internal/model"
)

const italyCatalogJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"NAME_1": "Bergamo"}},
    {"type": "Feature", "properties": {"NAME_1": "Lazio"}},
    {"type": "Feature", "properties": {"NAME_1": "Lombardia"}},
    {"type": "Feature", "properties": {"NAME_1": "Valle d'Aosta"}}
  ]
}`

func testCatalog(t *testing.T) *geo.Catalog {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "gadm41_ITA_1.json")
	if err := os.WriteFile(path, []byte(italyCatalogJSON), 0644); err != nil {
		t.Fatalf("failed to write catalog fixture: %v", err)
	}
	return geo.NewCatalog(dir)
}

func testRecords() []model.TrendRecord {
	return []model.TrendRecord{
		{
			Term: "mundial", Translate: "world cup",
			CountryName: "Italy", CountryCode: "IT",
			RegionName: "Province of Bergamo",
			WeekRaw:    "2024-03-04", RefreshDateRaw: "2024-03-10",
			Score: 87.5, Rank: 1,
		},
		{
			Term: "mundial", Translate: "world cup",
			CountryName: "Italy", CountryCode: "IT",
			RegionName: "Aosta",
			WeekRaw:    "2024-03-04", RefreshDateRaw: "2024-03-10",
			Score: 55.0, Rank: 2,
		},
		{
			Term: "mundial", Translate: "world cup",
			CountryName: "Italy", CountryCode: "IT",
			RegionName: "Atlantis",
			WeekRaw:    "not-a-date", RefreshDateRaw: "2024-03-10",
			Score: 12.0, Rank: 3,
		},
		{
			Term: "wahl", Translate: "election",
			CountryName: "Germany", CountryCode: "DE",
			RegionName: "Lower Saxony",
			WeekRaw:    "2024-03-04", RefreshDateRaw: "2024-03-10",
			Score: 40.0, Rank: 1,
		},
	}
}

func TestPipelineRun(t *testing.T) {
	pipeline := NewPipeline(testCatalog(t))

	result, err := pipeline.Run(testRecords())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(result.Records) != 4 {
		t.Fatalf("got %d records, want 4", len(result.Records))
	}

	// Cleaning strips the admin word and all whitespace; the leftover "of"
	// is deliberate and recovered by fuzzy matching downstream.
	if got := result.Records[0].RegionNameCleaned; got != "ofBergamo" {
		t.Errorf("cleaned[0] = %q, want ofBergamo", got)
	}
	if got := result.Records[0].RegionNameFinal; got != "ofBergamo" {
		t.Errorf("final[0] = %q, want ofBergamo", got)
	}

	// The curated Italy override canonicalises Aosta.
	if got := result.Records[1].RegionNameFinal; got != "Valled'Aosta" {
		t.Errorf("final[1] = %q, want Valled'Aosta", got)
	}

	// Country-scoped override applies for Germany even without a catalog file.
	if got := result.Records[3].RegionNameFinal; got != "Niedersachsen" {
		t.Errorf("final[3] = %q, want Niedersachsen", got)
	}

	// Bad week value is reported, not dropped.
	if len(result.DateReports) != 2 {
		t.Fatalf("got %d date reports, want 2", len(result.DateReports))
	}
	week := result.DateReports[0]
	if week.AllValid || len(week.Invalid) != 1 || week.Invalid[0].Value != "not-a-date" {
		t.Errorf("unexpected week report: %+v", week)
	}
	if result.Records[2].Week.Valid {
		t.Error("invalid week should carry the invalid marker")
	}
}

func TestPipelineAudit(t *testing.T) {
	pipeline := NewPipeline(testCatalog(t))

	result, err := pipeline.Run(testRecords())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// ofBergamo scores 0.875 against Bergamo and Valled'Aosta matches
	// exactly, so only Atlantis falls below the threshold. Germany has no
	// catalog file and is skipped entirely.
	if len(result.Audit) != 1 {
		t.Fatalf("audit = %+v, want exactly one weak match", result.Audit)
	}

	weak := result.Audit[0]
	if weak.Country != "Italy" || weak.RegionInDataset != "Atlantis" {
		t.Errorf("unexpected weak match: %+v", weak)
	}
	if weak.SimilarityScore >= pipeline.Threshold {
		t.Errorf("score %f should be below threshold %f", weak.SimilarityScore, pipeline.Threshold)
	}
	if weak.BestCatalogMatch == "" {
		t.Error("weak match should still name the closest catalog label")
	}
}

func TestPipelineEmptyInput(t *testing.T) {
	pipeline := NewPipeline(testCatalog(t))

	if _, err := pipeline.Run(nil); err == nil {
		t.Fatal("expected error for empty input")
	}
	if _, err := pipeline.Run([]model.TrendRecord{}); err == nil {
		t.Fatal("expected error for empty slice")
	}
}

// Enrichment always recomputes from the raw fields, so running the pipeline
// over its own output yields identical records and an identical audit.
func TestPipelineIdempotent(t *testing.T) {
	pipeline := NewPipeline(testCatalog(t))

	first, err := pipeline.Run(testRecords())
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	snapshot := make([]model.TrendRecord, len(first.Records))
	copy(snapshot, first.Records)

	second, err := pipeline.Run(first.Records)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if !reflect.DeepEqual(snapshot, second.Records) {
		t.Error("records changed on re-run")
	}
	if !reflect.DeepEqual(first.Audit, second.Audit) {
		t.Error("audit changed on re-run")
	}
}
