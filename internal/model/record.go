package model

import "time"

// Date is a date value that may have failed to parse. Invalid values are
// retained as a marker rather than dropping the row.
type Date struct {
	Time  time.Time
	Valid bool
}

// TrendRecord is one row of observed search-trend data. The source fields
// come straight from the CSV; the Raw date fields hold the unparsed text so
// the validator can be re-run without losing information.
type TrendRecord struct {
	Term           string
	Translate      string
	CountryName    string
	CountryCode    string // ISO-2
	RegionName     string
	WeekRaw        string
	RefreshDateRaw string
	Score          float64
	Rank           int

	Week        Date
	RefreshDate Date

	// Derived by the pipeline. RegionNameFinal is the only field that may
	// be joined against the geometry catalog or the regions table.
	RegionNameCleaned string
	RegionNameFinal   string
}

// MatchResult is one row of the audit report: a region whose best catalog
// match fell below the acceptance threshold. Review-only, never persisted.
type MatchResult struct {
	Country          string  `json:"country"`
	RegionInDataset  string  `json:"region_in_dataset"`
	BestCatalogMatch string  `json:"geojson_best_match"`
	SimilarityScore  float64 `json:"similarity_score"`
}
