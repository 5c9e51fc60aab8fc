package etl

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

const sampleCSV = `term,translate,country_name,country_code,region_name,week,refresh_date,score,rank
mundial,world cup,Italy,IT,Province of Bergamo,2024-03-04,2024-03-10,87.5,1
mundial,world cup,Italy,IT,Lombardia,2024-03-04,2024-03-10,63.0,2
wahl,election,Germany,DE,Lower Saxony,2024-03-04,2024-03-10,,3
bad,bad row,Italy,IT,Lazio,2024-03-04,2024-03-10,10.0,zero
bad,bad row,Italy,IT,Lazio,2024-03-04,2024-03-10,10.0,0
`

func TestReadTrendsFrom(t *testing.T) {
	records, err := ReadTrendsFrom(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadTrendsFrom failed: %v", err)
	}

	// The two malformed-rank rows are skipped, not fatal.
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	first := records[0]
	if first.Term != "mundial" || first.Translate != "world cup" {
		t.Errorf("unexpected term fields: %+v", first)
	}
	if first.CountryName != "Italy" || first.CountryCode != "IT" {
		t.Errorf("unexpected country fields: %+v", first)
	}
	if first.RegionName != "Province of Bergamo" {
		t.Errorf("region = %q", first.RegionName)
	}
	if first.Score != 87.5 || first.Rank != 1 {
		t.Errorf("score/rank = %f/%d", first.Score, first.Rank)
	}

	// Dates stay raw strings until validation runs.
	if first.WeekRaw != "2024-03-04" || first.Week.Valid {
		t.Errorf("week should still be raw: %+v", first)
	}

	// Unparseable score defaults to zero rather than dropping the row.
	if records[2].Score != 0 {
		t.Errorf("blank score = %f, want 0", records[2].Score)
	}
}

func TestReadTrendsFromHeaderVariants(t *testing.T) {
	csv := "Term,TRANSLATE, country_name ,country_code,region_name,week,refresh_date,score,rank\n" +
		"a,b,Italy,IT,Lazio,2024-01-01,2024-01-02,1.0,1\n"

	records, err := ReadTrendsFrom(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadTrendsFrom failed on header variants: %v", err)
	}
	if len(records) != 1 || records[0].CountryName != "Italy" {
		t.Errorf("unexpected records: %+v", records)
	}
}

func TestReadTrendsFromMalformedLine(t *testing.T) {
	csv := "term,translate,country_name,country_code,region_name,week,refresh_date,score,rank\n" +
		"a,b,Italy,IT,Lazio,2024-01-01,2024-01-02,1.0,1\n" +
		"a,b,Italy,IT,\"Laz\"io,2024-01-01,2024-01-02,1.0,2\n" +
		"a,b,Italy,IT,Umbria,2024-01-01,2024-01-02,1.0,3\n"

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	records, err := ReadTrendsFrom(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadTrendsFrom failed: %v", err)
	}

	// The malformed quoted line is skipped, the lines around it survive.
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].RegionName != "Lazio" || records[1].RegionName != "Umbria" {
		t.Errorf("unexpected surviving rows: %+v", records)
	}

	// The logged row number is the bad line's position in the file, not the
	// count of rows parsed before it.
	if !strings.Contains(buf.String(), "record 2") {
		t.Errorf("log should name record 2, got: %s", buf.String())
	}
}

func TestReadTrendsFromMissingColumns(t *testing.T) {
	csv := "term,translate,country_name\na,b,Italy\n"

	_, err := ReadTrendsFrom(strings.NewReader(csv))
	if err == nil {
		t.Fatal("expected error for missing columns")
	}
	for _, col := range []string{"region_name", "week", "rank"} {
		if !strings.Contains(err.Error(), col) {
			t.Errorf("error should name missing column %s: %v", col, err)
		}
	}
}
