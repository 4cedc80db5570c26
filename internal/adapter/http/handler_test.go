package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cpc-billing/internal/core/domain"
	"cpc-billing/internal/core/port"
	"cpc-billing/internal/core/port/mocks"
)

func newTestHandler(t *testing.T) (*mocks.MockClickUseCase, http.Handler) {
	svc := mocks.NewMockClickUseCase(t)
	h := NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)), prometheus.NewRegistry())
	return svc, h.Router()
}

func TestHandleClick_Success(t *testing.T) {
	svc, router := newTestHandler(t)
	campID := uuid.New()

	svc.EXPECT().
		ProcessClick(mock.Anything, port.ClickRequest{
			ProductID:  "prod-1",
			CampaignID: &campID,
			Client: domain.ClickContext{
				IP:            "203.0.113.7",
				UserAgent:     "test-agent",
				Referrer:      "https://shop.example/list",
				SessionUserID: "user-1",
			},
			IdempotencyKey: "key-1",
		}).
		Return(&port.ClickResult{
			ClickID:          uuid.New(),
			CampaignID:       campID,
			CampaignName:     "Spring sale",
			Cost:             decimal.RequireFromString("0.50"),
			RemainingBalance: decimal.RequireFromString("99.50"),
			Warning: &domain.BudgetWarning{
				Level:      domain.WarningLevelWarning,
				Spent:      decimal.RequireFromString("85"),
				Budget:     decimal.RequireFromString("100"),
				Percentage: decimal.RequireFromString("85"),
			},
		}, nil)

	body := fmt.Sprintf(`{"product_id":"prod-1","campaign_id":%q,"session_user_id":"forged"}`, campID)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/clicks", strings.NewReader(body))
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "user-1"})
	req.Header.Set("X-Real-IP", "203.0.113.7")
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Referer", "https://shop.example/list")
	req.Header.Set("Idempotency-Key", "key-1")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Spring sale", got["campaign_name"])
	assert.Equal(t, "99.5", got["remaining_balance"])
	assert.Equal(t, "warning", got["warning"].(map[string]any)["level"])
}

func TestHandleClick_Errors(t *testing.T) {
	campID := uuid.New()
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "Not found", err: port.ErrCampaignNotFound, status: http.StatusNotFound, code: "campaign_not_found"},
		{name: "Insufficient balance", err: &port.InsufficientBalanceError{CampaignID: campID, CampaignPaused: true}, status: http.StatusPaymentRequired, code: "insufficient_balance"},
		{name: "Budget exceeded", err: &port.DailyBudgetExceededError{CampaignID: campID}, status: http.StatusTooManyRequests, code: "daily_budget_exceeded"},
		{name: "Duplicate click", err: &port.DuplicateClickError{CampaignID: campID, Window: "5m0s"}, status: http.StatusConflict, code: "duplicate_click"},
		{name: "Idempotency mismatch", err: port.ErrIdempotencyMismatch, status: http.StatusUnprocessableEntity, code: "idempotency_mismatch"},
		{name: "Transient", err: fmt.Errorf("lock: %w", port.ErrTransientStore), status: http.StatusServiceUnavailable, code: "temporarily_unavailable"},
		{name: "Internal", err: errors.New("boom"), status: http.StatusInternalServerError, code: "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newTestHandler(t)
			svc.EXPECT().ProcessClick(mock.Anything, mock.Anything).Return(nil, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/clicks", strings.NewReader(`{"product_id":"prod-1"}`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			var got errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.code, got.Error)
			if tt.status == http.StatusServiceUnavailable {
				assert.Equal(t, "1", rec.Header().Get("Retry-After"))
			}
		})
	}
}

func TestHandleClick_BadRequest(t *testing.T) {
	for _, body := range []string{`not json`, `{}`, `{"product_id":"p","campaign_id":"nope"}`} {
		_, router := newTestHandler(t)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/clicks", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestHandleProductOut(t *testing.T) {
	campID := uuid.New()

	t.Run("Bills and redirects", func(t *testing.T) {
		svc, router := newTestHandler(t)
		svc.EXPECT().
			ProcessClick(mock.Anything, mock.MatchedBy(func(r port.ClickRequest) bool {
				return r.ProductID == "prod-1" && *r.CampaignID == campID &&
					r.Client.SessionUserID == "user-7" && r.Client.IP == "198.51.100.4"
			})).
			Return(&port.ClickResult{}, nil)

		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/products/prod-1/out?url=https%3A%2F%2Fstore.example%2Fitem&campaign_id="+campID.String(), nil)
		req.Header.Set("X-Forwarded-For", "198.51.100.4")
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "user-7"})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "https://store.example/item", rec.Header().Get("Location"))
	})

	t.Run("Billing failure still redirects", func(t *testing.T) {
		svc, router := newTestHandler(t)
		svc.EXPECT().ProcessClick(mock.Anything, mock.Anything).
			Return(nil, &port.InsufficientBalanceError{CampaignID: campID})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/prod-1/out?url=http://store.example/", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "http://store.example/", rec.Header().Get("Location"))
	})

	t.Run("Rejects unsafe destinations", func(t *testing.T) {
		for _, dest := range []string{"", "javascript:alert(1)", "/relative", "ftp://files.example/x"} {
			_, router := newTestHandler(t)
			req := httptest.NewRequest(http.MethodGet, "/api/v1/products/prod-1/out", nil)
			q := req.URL.Query()
			q.Set("url", dest)
			req.URL.RawQuery = q.Encode()
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code, dest)
		}
	})
}

func TestHandleCampaignStats(t *testing.T) {
	svc, router := newTestHandler(t)
	campID := uuid.New()

	svc.EXPECT().CampaignStats(mock.Anything, campID).Return(&port.CampaignStats{
		CampaignID:        campID,
		Name:              "Spring sale",
		Status:            domain.CampaignActive,
		TodaySpent:        decimal.NewFromInt(3),
		TodayClicks:       3,
		LedgerTodaySpent:  decimal.NewFromInt(3),
		LedgerTodayClicks: 3,
	}, nil)
	svc.EXPECT().CampaignStats(mock.Anything, mock.Anything).Return(nil, port.ErrCampaignNotFound)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/"+campID.String()+"/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ledger_today_clicks":3`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/"+uuid.NewString()+"/stats", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/not-a-uuid/stats", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "cpc_test_total", Help: "test"})
	reg.MustRegister(c)
	c.Inc()

	h := NewHandler(mocks.NewMockClickUseCase(t), slog.New(slog.NewTextHandler(io.Discard, nil)), reg)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil).WithContext(context.Background()))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cpc_test_total 1")
}
