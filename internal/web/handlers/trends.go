package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/trends-intl/internal/overrides"
	"github.com/trends-intl/internal/store"
)

// TrendsHandler serves the joined trend data endpoints.
type TrendsHandler struct {
	Store *store.Store
	Terms *overrides.TermTable
}

// ListCountries returns the countries present in the store.
func (h *TrendsHandler) ListCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.Store.Countries()
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, countries)
}

// ListTrends returns rank 1-5 rows for ?country=XX, optionally filtered by
// one or more ?week=YYYY-MM-DD parameters.
func (h *TrendsHandler) ListTrends(w http.ResponseWriter, r *http.Request) {
	countryCode := r.URL.Query().Get("country")
	if countryCode == "" {
		http.Error(w, "country parameter is required", http.StatusBadRequest)
		return
	}

	var weeks []time.Time
	for _, raw := range r.URL.Query()["week"] {
		week, err := time.Parse("2006-01-02", raw)
		if err != nil {
			http.Error(w, "invalid week: "+raw, http.StatusBadRequest)
			return
		}
		weeks = append(weeks, week)
	}

	rows, err := h.Store.TrendsForCountry(countryCode, weeks)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, rows)
}

// TopTerms returns, per country, the most frequent rank-1 terms.
func (h *TrendsHandler) TopTerms(w http.ResponseWriter, r *http.Request) {
	terms, err := h.Store.TopRankOneTerms()
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, terms)
}

// TermCountries returns the countries where a final (grouped) term trended.
func (h *TrendsHandler) TermCountries(w http.ResponseWriter, r *http.Request) {
	term := mux.Vars(r)["term"]

	counts, err := h.Store.TermCountries(term, h.Terms)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]interface{}{
		"term":      term,
		"countries": counts,
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
