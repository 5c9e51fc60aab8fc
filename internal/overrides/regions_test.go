package overrides

import (
	"strings"
	"testing"
)

func TestRegionTableApply(t *testing.T) {
	table := NewRegionTable()

	tests := []struct {
		name    string
		country string
		cleaned string
		want    string
	}{
		{
			name:    "country-scoped hit",
			country: "Germany",
			cleaned: "LowerSaxony",
			want:    "Niedersachsen",
		},
		{
			name:    "scoped entry invisible to other countries",
			country: "Austria",
			cleaned: "LowerSaxony",
			want:    "LowerSaxony",
		},
		{
			name:    "global fallback",
			country: "India",
			cleaned: "Delhi",
			want:    "NCTofDelhi",
		},
		{
			name:    "many-to-one consolidation",
			country: "Spain",
			cleaned: "Melilla",
			want:    "CeutayMelilla",
		},
		{
			name:    "diacritic restoration",
			country: "Vietnam",
			cleaned: "Hanoi",
			want:    "HàNội",
		},
		{
			name:    "miss returns input unchanged",
			country: "Italy",
			cleaned: "UnknownLabel123",
			want:    "UnknownLabel123",
		},
		{
			name:    "unknown country falls through to global",
			country: "Atlantis",
			cleaned: "YukonTerritory",
			want:    "Yukon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.Apply(tt.country, tt.cleaned)
			if got != tt.want {
				t.Errorf("Apply(%q, %q) = %q, want %q", tt.country, tt.cleaned, got, tt.want)
			}
		})
	}
}

// Applying the table twice must equal applying it once, for every entry:
// no canonical value may itself be a key that maps somewhere else.
func TestRegionTableIdempotent(t *testing.T) {
	table := NewRegionTable()

	table.Walk(func(country, cleaned, canonical string) {
		again := table.Apply(country, canonical)
		if again != canonical {
			t.Errorf("cycle: Apply(%q, %q) = %q after %q -> %q",
				country, canonical, again, cleaned, canonical)
		}
	})
}

func TestRegionTableSize(t *testing.T) {
	table := NewRegionTable()

	if table.Countries() < 20 {
		t.Errorf("expected scoped entries for at least 20 countries, got %d", table.Countries())
	}
	if table.Entries() < 240 {
		t.Errorf("expected at least 240 total mappings, got %d", table.Entries())
	}
}

func TestTermTable(t *testing.T) {
	csv := strings.NewReader(
		"translate,normalized_term\n" +
			"world cup final,world cup\n" +
			"world cup 2022,world cup\n" +
			"eurovision,\n")

	table, err := ReadTermTable(csv)
	if err != nil {
		t.Fatalf("ReadTermTable failed: %v", err)
	}

	tests := []struct {
		name      string
		translate string
		want      string
	}{
		{"grouped term", "world cup final", "world cup"},
		{"second alias of same group", "world cup 2022", "world cup"},
		{"no mapping coalesces to input", "olympics", "olympics"},
		{"blank mapping coalesces to input", "eurovision", "eurovision"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.Final(tt.translate)
			if got != tt.want {
				t.Errorf("Final(%q) = %q, want %q", tt.translate, got, tt.want)
			}
		})
	}

	if table.Len() != 2 {
		t.Errorf("expected 2 grouped terms, got %d", table.Len())
	}
}

func TestTermTableMissingColumn(t *testing.T) {
	csv := strings.NewReader("translate,wrong\nfoo,bar\n")
	if _, err := ReadTermTable(csv); err == nil {
		t.Fatal("expected error for missing normalized_term column")
	}
}

func TestNilTermTable(t *testing.T) {
	var table *TermTable
	if got := table.Final("anything"); got != "anything" {
		t.Errorf("nil table Final = %q, want identity", got)
	}
}
