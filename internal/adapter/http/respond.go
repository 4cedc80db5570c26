package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"cpc-billing/internal/core/port"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps engine errors onto status codes. Typed rejections carry
// their fields in details.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var (
		balanceErr *port.InsufficientBalanceError
		budgetErr  *port.DailyBudgetExceededError
		dupErr     *port.DuplicateClickError
	)
	switch {
	case errors.As(err, &balanceErr):
		h.writeJSON(w, http.StatusPaymentRequired, errorResponse{"insufficient_balance", err.Error(), balanceErr})
	case errors.As(err, &budgetErr):
		h.writeJSON(w, http.StatusTooManyRequests, errorResponse{"daily_budget_exceeded", err.Error(), budgetErr})
	case errors.As(err, &dupErr):
		h.writeJSON(w, http.StatusConflict, errorResponse{"duplicate_click", err.Error(), dupErr})
	case errors.Is(err, port.ErrCampaignNotFound):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "campaign_not_found", Message: err.Error()})
	case errors.Is(err, port.ErrIdempotencyMismatch):
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "idempotency_mismatch", Message: err.Error()})
	case errors.Is(err, port.ErrTransientStore):
		w.Header().Set("Retry-After", "1")
		h.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "temporarily_unavailable", Message: "please retry"})
	default:
		h.logger.Error("click handler error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal", Message: "internal error"})
	}
}

// clientIP returns the address set by middleware.RealIP, without a port.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// sessionCookie carries the logged-in visitor id used for attribution.
const sessionCookie = "session_user_id"

func sessionUserID(r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil {
		return c.Value
	}
	return ""
}
