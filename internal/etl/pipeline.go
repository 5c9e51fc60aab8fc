package etl

import (
	"fmt"
	"sort"

	"github.com/trends-intl/internal/geo"
	"github.com/trends-intl/internal/model"
	"github.com/trends-intl/internal/normalize"
	"github.com/trends-intl/internal/overrides"
	"github.com/trends-intl/internal/similarity"
	"github.com/trends-intl/internal/validate"
)

// dateColumns are the fields the validator coerces.
var dateColumns = []string{"week", "refresh_date"}

// Pipeline sequences the enrichment stages: validate dates, clean region
// names, apply overrides, then audit against the geometry catalog. Stage
// order is fixed; overrides assume cleaning has run, the audit assumes
// overrides have run. The lookup tables are immutable after construction.
type Pipeline struct {
	Overrides  *overrides.RegionTable
	Catalog    *geo.Catalog
	Threshold  float64
	DateLayout string
}

// NewPipeline creates a pipeline with the curated override table and the
// default threshold and date layout.
func NewPipeline(catalog *geo.Catalog) *Pipeline {
	return &Pipeline{
		Overrides:  overrides.NewRegionTable(),
		Catalog:    catalog,
		Threshold:  similarity.DefaultThreshold,
		DateLayout: validate.DefaultDateLayout,
	}
}

// Result carries the enriched records plus the two side channels: date
// diagnostics and the audit report. The audit never alters the records.
type Result struct {
	Records     []model.TrendRecord
	DateReports []validate.Report
	Audit       []model.MatchResult
}

// Run executes the full pipeline. An empty input is a structural error:
// nothing partial is produced. Records come back in input order, enriched
// in place. Running the pipeline on its own output changes nothing: cleaning
// a cleaned label and overriding a canonical label are both no-ops.
func (p *Pipeline) Run(records []model.TrendRecord) (*Result, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("empty input: no trend records to process")
	}

	reports, err := validate.Dates(records, dateColumns, p.DateLayout)
	if err != nil {
		return nil, err
	}

	for i := range records {
		cleaned := normalize.CleanRegion(records[i].RegionName)
		records[i].RegionNameCleaned = cleaned
		records[i].RegionNameFinal = p.Overrides.Apply(records[i].CountryName, cleaned)
	}

	audit := p.Audit(records)

	return &Result{
		Records:     records,
		DateReports: reports,
		Audit:       audit,
	}, nil
}

// Audit resolves every distinct final region label per country against that
// country's catalog and reports the ones whose best match falls below the
// threshold. Countries without a catalog file are skipped; the audit is an
// output-only side channel and never alters data.
func (p *Pipeline) Audit(records []model.TrendRecord) []model.MatchResult {
	byCountry := make(map[string]map[string]bool)
	for _, rec := range records {
		if rec.RegionNameFinal == "" {
			continue
		}
		if byCountry[rec.CountryName] == nil {
			byCountry[rec.CountryName] = make(map[string]bool)
		}
		byCountry[rec.CountryName][rec.RegionNameFinal] = true
	}

	countries := make([]string, 0, len(byCountry))
	for country := range byCountry {
		countries = append(countries, country)
	}
	sort.Strings(countries)

	var poor []model.MatchResult
	for _, country := range countries {
		iso3, ok := geo.ISO3ForName(country)
		if !ok {
			continue
		}

		catalogNames, err := p.Catalog.RegionNames(iso3)
		if err != nil {
			// Missing catalog file is recoverable; skip this country.
			continue
		}

		regions := make([]string, 0, len(byCountry[country]))
		for region := range byCountry[country] {
			regions = append(regions, region)
		}
		sort.Strings(regions)

		for _, region := range regions {
			best := similarity.BestMatch(region, catalogNames)
			if !best.Found {
				continue
			}
			if best.Score < p.Threshold {
				poor = append(poor, model.MatchResult{
					Country:          country,
					RegionInDataset:  region,
					BestCatalogMatch: best.Label,
					SimilarityScore:  round3(best.Score),
				})
			}
		}
	}

	return poor
}

func round3(f float64) float64 {
	return float64(int(f*1000+0.5)) / 1000
}

// PrintAuditSummary prints per-country counts of weak matches for manual
// review, then the individual rows.
func PrintAuditSummary(results []model.MatchResult) {
	if len(results) == 0 {
		fmt.Println("No poor matches found.")
		return
	}

	counts := make(map[string]int)
	var order []string
	for _, r := range results {
		if counts[r.Country] == 0 {
			order = append(order, r.Country)
		}
		counts[r.Country]++
	}
	sort.Strings(order)

	fmt.Println("Low-similarity regions by country:")
	for _, country := range order {
		fmt.Printf("  %-20s %d\n", country, counts[country])
	}

	fmt.Println("\nDetail:")
	for _, r := range results {
		fmt.Printf("  %-16s %-28s -> %-28s %.3f\n",
			r.Country, r.RegionInDataset, r.BestCatalogMatch, r.SimilarityScore)
	}
}
