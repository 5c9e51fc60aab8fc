package match

import (
	"fmt"

	"github.com/trends-intl/internal/normalize"
	"github.com/trends-intl/internal/similarity"
)

// Mode says how a user-chosen region label was resolved.
type Mode string

const (
	// ModeExact means the label matched a dataset label directly.
	ModeExact Mode = "exact"
	// ModeFuzzy means a similar dataset label was substituted; the caller
	// must surface the warning.
	ModeFuzzy Mode = "fuzzy"
	// ModeAll means nothing cleared the threshold and the caller should
	// fall back to the unfiltered all-regions view.
	ModeAll Mode = "all"
)

// Resolution is the outcome of resolving a user-chosen label against the
// labels actually observed in the dataset.
type Resolution struct {
	Label   string  `json:"label,omitempty"`
	Mode    Mode    `json:"mode"`
	Score   float64 `json:"score,omitempty"`
	Warning string  `json:"warning,omitempty"`
}

// Resolver performs interactive fallback resolution: exact match first, then
// fuzzy within the threshold, then graceful degradation to all regions.
// The order and the threshold govern what the dashboard displays.
type Resolver struct {
	threshold float64
}

// NewResolver creates a resolver. A zero threshold selects the default.
func NewResolver(threshold float64) *Resolver {
	if threshold <= 0 {
		threshold = similarity.DefaultThreshold
	}
	return &Resolver{threshold: threshold}
}

// Resolve matches label against the known dataset labels for one country.
// Matching happens on folded keys (accent-free, lowercase, alphanumeric) so
// a catalog spelling and a dataset spelling that differ only in diacritics
// or spacing still meet exactly. Empty input declines to match and degrades
// to the all-regions view.
func (r *Resolver) Resolve(label string, known []string) Resolution {
	if label == "" || len(known) == 0 {
		return Resolution{
			Mode:    ModeAll,
			Warning: fmt.Sprintf("No data for %q, showing all regions", label),
		}
	}

	target := normalize.Fold(label)

	folded := make([]string, len(known))
	for i, k := range known {
		folded[i] = normalize.Fold(k)
		if folded[i] == target {
			return Resolution{Label: k, Mode: ModeExact}
		}
	}

	best := similarity.BestMatch(target, folded)
	if best.Found && best.Score >= r.threshold {
		// Map the folded winner back to its display label. First index wins,
		// consistent with the tie-break in BestMatch.
		for i, f := range folded {
			if f == best.Label {
				return Resolution{
					Label:   known[i],
					Mode:    ModeFuzzy,
					Score:   best.Score,
					Warning: fmt.Sprintf("No exact data for %q, using %q", label, known[i]),
				}
			}
		}
	}

	return Resolution{
		Mode:    ModeAll,
		Warning: fmt.Sprintf("No data for %q, showing all regions", label),
	}
}
