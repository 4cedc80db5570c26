package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// handleCampaignStats returns the cached campaign counters next to the
// values recomputed from the click ledger. Invalid ids result in HTTP 400,
// unknown campaigns in HTTP 404.
func (h *Handler) handleCampaignStats(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "campaignID"))
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	stats, err := h.svc.CampaignStats(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}
