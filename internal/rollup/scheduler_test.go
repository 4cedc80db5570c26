package rollup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cpc-billing/internal/adapter/memory"
	"cpc-billing/internal/core/domain"
	"cpc-billing/internal/core/port/mocks"
	"cpc-billing/internal/metrics"
)

var now = time.Date(2024, 6, 2, 0, 5, 0, 0, time.UTC)

func TestRun_ResetsStaleCounters(t *testing.T) {
	ledger := memory.NewLedger()
	campID := uuid.New()
	ledger.PutCampaign(domain.Campaign{
		ID:          campID,
		ProductID:   "prod-1",
		Status:      domain.CampaignActive,
		IsApproved:  true,
		TodaySpent:  decimal.NewFromInt(40),
		TodayClicks: 40,
	})
	ledger.PutClick(domain.ClickRecord{
		ID:           uuid.New(),
		CampaignID:   campID,
		CostPerClick: decimal.NewFromInt(1),
		Timestamp:    now.Add(-10 * time.Minute),
	})
	ledger.PutClick(domain.ClickRecord{
		ID:           uuid.New(),
		CampaignID:   campID,
		CostPerClick: decimal.RequireFromString("2.5"),
		Timestamp:    now.Add(-time.Minute),
	})

	reg := prometheus.NewRegistry()
	m := metrics.NewClickMetrics(reg)
	s, err := New(ledger, "5 0 * * *", WithMetrics(m), WithClock(func() time.Time { return now }))
	require.NoError(t, err)

	require.NoError(t, s.Run(context.Background()))

	c, err := ledger.GetCampaign(context.Background(), campID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("2.5").Equal(c.TodaySpent))
	assert.EqualValues(t, 1, c.TodayClicks)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RollupRuns.WithLabelValues("ok")))
}

func TestRun_PurgesWithTTL(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	repo.EXPECT().RefreshDailyAggregates(mock.Anything, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)).Return(3, nil)
	repo.EXPECT().PurgeIdempotencyKeys(mock.Anything, now.Add(-48*time.Hour)).Return(7, nil)

	s, err := New(repo, "@daily", WithIdempotencyTTL(48*time.Hour), WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	assert.NoError(t, s.Run(context.Background()))
}

func TestRun_ReportsBothFailures(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	errRefresh := errors.New("refresh failed")
	repo.EXPECT().RefreshDailyAggregates(mock.Anything, mock.Anything).Return(0, errRefresh)
	repo.EXPECT().PurgeIdempotencyKeys(mock.Anything, mock.Anything).Return(0, nil)

	reg := prometheus.NewRegistry()
	m := metrics.NewClickMetrics(reg)
	s, err := New(repo, "@daily", WithMetrics(m), WithClock(func() time.Time { return now }))
	require.NoError(t, err)

	err = s.Run(context.Background())
	assert.ErrorIs(t, err, errRefresh)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RollupRuns.WithLabelValues("error")))
}

func TestNew_InvalidSchedule(t *testing.T) {
	_, err := New(memory.NewLedger(), "every tuesday")
	assert.Error(t, err)
}

func TestStartStop(t *testing.T) {
	s, err := New(memory.NewLedger(), "5 0 * * *")
	require.NoError(t, err)
	s.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}
