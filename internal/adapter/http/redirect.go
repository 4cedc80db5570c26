package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"cpc-billing/internal/core/domain"
	"cpc-billing/internal/core/port"
)

// handleProductOut bills the click behind a "visit store" link and sends
// the visitor on. The destination must be an absolute http(s) URL, otherwise
// HTTP 400. Billing failures are logged and never block the redirect.
func (h *Handler) handleProductOut(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	q := r.URL.Query()

	dest, err := url.Parse(q.Get("url"))
	if err != nil || (dest.Scheme != "http" && dest.Scheme != "https") || dest.Host == "" {
		http.Error(w, "invalid url", http.StatusBadRequest)
		return
	}

	req := port.ClickRequest{
		ProductID: productID,
		Client: domain.ClickContext{
			IP:            clientIP(r),
			UserAgent:     r.UserAgent(),
			Referrer:      r.Referer(),
			SessionUserID: sessionUserID(r),
		},
	}
	if cid := q.Get("campaign_id"); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			http.Error(w, "invalid campaign_id", http.StatusBadRequest)
			return
		}
		req.CampaignID = &id
	}

	if _, err = h.svc.ProcessClick(r.Context(), req); err != nil && !errors.Is(err, port.ErrCampaignNotFound) {
		h.logger.Warn("outbound click not billed",
			slog.String("product_id", productID),
			slog.Any("error", err),
		)
	}
	http.Redirect(w, r, dest.String(), http.StatusFound)
}
