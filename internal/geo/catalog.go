package geo

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ErrNotFound reports that no catalog file exists for a country. This is a
// recoverable condition: callers skip that country rather than abort.
var ErrNotFound = errors.New("no region catalog for country")

// Catalog reads canonical region labels from GADM level-1 boundary files.
// Files are named gadm41_<ISO3>_1.json; the canonical label is the NAME_1
// property with whitespace removed, sorted lexicographically so downstream
// tie-breaks are deterministic.
type Catalog struct {
	dir string

	// One catalog is shared across concurrent request handlers; the lazy
	// caches need the lock. Duplicate loads under contention are harmless,
	// both stores are idempotent.
	mu    sync.RWMutex
	names map[string][]string
	raw   map[string][]byte
}

// NewCatalog creates a catalog over the given directory. Files are read
// lazily and cached; the catalog is read-only.
func NewCatalog(dir string) *Catalog {
	return &Catalog{
		dir:   dir,
		names: make(map[string][]string),
		raw:   make(map[string][]byte),
	}
}

type geoJSON struct {
	Features []struct {
		Properties struct {
			Name1 string `json:"NAME_1"`
		} `json:"properties"`
	} `json:"features"`
}

// RegionNames returns the ordered canonical labels for an ISO-3 code, or
// ErrNotFound when no catalog file exists.
func (c *Catalog) RegionNames(iso3 string) ([]string, error) {
	iso3 = strings.ToUpper(iso3)
	c.mu.RLock()
	cached, ok := c.names[iso3]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	data, err := c.GeoJSON(iso3)
	if err != nil {
		return nil, err
	}

	var parsed geoJSON
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse catalog for %s: %w", iso3, err)
	}

	names := make([]string, 0, len(parsed.Features))
	for _, feature := range parsed.Features {
		if feature.Properties.Name1 == "" {
			continue
		}
		names = append(names, strings.ReplaceAll(feature.Properties.Name1, " ", ""))
	}
	sort.Strings(names)

	c.mu.Lock()
	c.names[iso3] = names
	c.mu.Unlock()
	return names, nil
}

// GeoJSON returns the raw catalog file for an ISO-3 code, for passthrough to
// map clients. Returns ErrNotFound when the file does not exist.
func (c *Catalog) GeoJSON(iso3 string) ([]byte, error) {
	iso3 = strings.ToUpper(iso3)
	c.mu.RLock()
	cached, ok := c.raw[iso3]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	path := filepath.Join(c.dir, fmt.Sprintf("gadm41_%s_1.json", iso3))
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, iso3)
		}
		return nil, fmt.Errorf("failed to read catalog for %s: %w", iso3, err)
	}

	c.mu.Lock()
	c.raw[iso3] = data
	c.mu.Unlock()
	return data, nil
}
