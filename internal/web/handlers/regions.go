package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/trends-intl/internal/geo"
	"github.com/trends-intl/internal/match"
	"github.com/trends-intl/internal/store"
)

// RegionsHandler serves the geometry catalog and interactive resolution.
type RegionsHandler struct {
	Store    *store.Store
	Catalog  *geo.Catalog
	Resolver *match.Resolver
}

// GetGeoJSON passes through the raw boundary file for an ISO-3 code. A
// missing catalog file is a 404 the client recovers from by skipping the
// map view.
func (h *RegionsHandler) GetGeoJSON(w http.ResponseWriter, r *http.Request) {
	iso3 := mux.Vars(r)["iso3"]

	data, err := h.Catalog.GeoJSON(iso3)
	if err != nil {
		if errors.Is(err, geo.ErrNotFound) {
			http.Error(w, "no region catalog for "+iso3, http.StatusNotFound)
			return
		}
		http.Error(w, "Catalog error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// ListRegionNames returns the sorted canonical labels for an ISO-3 code.
func (h *RegionsHandler) ListRegionNames(w http.ResponseWriter, r *http.Request) {
	iso3 := mux.Vars(r)["iso3"]

	names, err := h.Catalog.RegionNames(iso3)
	if err != nil {
		if errors.Is(err, geo.ErrNotFound) {
			http.Error(w, "no region catalog for "+iso3, http.StatusNotFound)
			return
		}
		http.Error(w, "Catalog error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, names)
}

// Resolve handles ?country=XX&region=... : exact match against observed
// dataset labels first, fuzzy within the threshold with a warning, or the
// all-regions fallback with a different warning. Always 200; degradation is
// expressed in the payload, never as an HTTP failure.
func (h *RegionsHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	countryCode := r.URL.Query().Get("country")
	region := r.URL.Query().Get("region")
	if countryCode == "" {
		http.Error(w, "country parameter is required", http.StatusBadRequest)
		return
	}

	known, err := h.Store.RegionLabels(countryCode)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.Resolver.Resolve(region, known))
}
