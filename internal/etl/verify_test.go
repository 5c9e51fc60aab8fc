package etl

import (
	"testing"

	"github.com/trends-intl/internal/model"
)

func TestVerifyCountryCodes(t *testing.T) {
	records := []model.TrendRecord{
		{CountryName: "Italy", CountryCode: "IT"},
		{CountryName: "Italy", CountryCode: "DE"},
		{CountryName: "Germany", CountryCode: "DE"},
		{CountryName: "Narnia", CountryCode: "NA"},
	}

	mismatches := VerifyCountryCodes(records)

	// The wrong Italy code is flagged; the unknown country is not, since
	// there is no reference code to check against.
	if len(mismatches) != 1 {
		t.Fatalf("got %d mismatches, want 1: %+v", len(mismatches), mismatches)
	}

	m := mismatches[0]
	if m.Row != 1 || m.CountryName != "Italy" || m.CountryCode != "DE" || m.ExpectedCode != "IT" {
		t.Errorf("unexpected mismatch: %+v", m)
	}
}
