package handlers

import (
	"net/http"

	"github.com/trends-intl/internal/store"
)

// StatsHandler serves overall row counts.
type StatsHandler struct {
	Store *store.Store
}

// GetStats returns counts for the four normalized tables.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Store.Stats()
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, stats)
}
