package etl

import (
	"github.com/trends-intl/internal/geo"
	"github.com/trends-intl/internal/model"
)

// CodeMismatch is a row whose country_code disagrees with the reference
// code for its country_name.
type CodeMismatch struct {
	Row          int    `json:"row"`
	CountryName  string `json:"country_name"`
	CountryCode  string `json:"country_code"`
	ExpectedCode string `json:"expected_code"`
}

// VerifyCountryCodes cross-checks every record's ISO-2 code against the
// reference country table. Diagnostic only; unknown country names are not
// mismatches.
func VerifyCountryCodes(records []model.TrendRecord) []CodeMismatch {
	var mismatches []CodeMismatch
	for i, rec := range records {
		expected, ok := geo.ISO2ForName(rec.CountryName)
		if !ok {
			continue
		}
		if rec.CountryCode != expected {
			mismatches = append(mismatches, CodeMismatch{
				Row:          i,
				CountryName:  rec.CountryName,
				CountryCode:  rec.CountryCode,
				ExpectedCode: expected,
			})
		}
	}
	return mismatches
}
