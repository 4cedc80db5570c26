package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"cpc-billing/internal/core/domain"
	"cpc-billing/internal/core/port"
)

type clickRequest struct {
	ProductID  string     `json:"product_id"`
	CampaignID *uuid.UUID `json:"campaign_id,omitempty"`
}

// handleClick bills a product click and returns the charge as JSON. The
// requester IP comes from middleware.RealIP; User-Agent, Referer and
// Idempotency-Key are read from headers and the visitor from the session
// cookie. Parsing errors produce HTTP 400.
func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	var body clickRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if body.ProductID == "" {
		http.Error(w, "missing product_id", http.StatusBadRequest)
		return
	}

	res, err := h.svc.ProcessClick(r.Context(), port.ClickRequest{
		ProductID:  body.ProductID,
		CampaignID: body.CampaignID,
		Client: domain.ClickContext{
			IP:            clientIP(r),
			UserAgent:     r.UserAgent(),
			Referrer:      r.Referer(),
			SessionUserID: sessionUserID(r),
		},
		IdempotencyKey: r.Header.Get("Idempotency-Key"),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}
