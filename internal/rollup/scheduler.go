// Package rollup runs the daily maintenance job of the billing ledger: it
// rewrites the cached today counters of every campaign from the click ledger
// and purges expired idempotency keys.
package rollup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"cpc-billing/internal/core/domain"
	"cpc-billing/internal/metrics"
)

// Store is the part of port.LedgerRepository the job needs.
type Store interface {
	RefreshDailyAggregates(ctx context.Context, since time.Time) (int64, error)
	PurgeIdempotencyKeys(ctx context.Context, before time.Time) (int64, error)
}

// Scheduler triggers Run on a cron schedule evaluated in UTC.
type Scheduler struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.ClickMetrics
	now     func() time.Time

	idempotencyTTL time.Duration
	runTimeout     time.Duration
	cron           *cron.Cron
}

type Option func(*Scheduler)

func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) { s.logger = l }
}

func WithMetrics(m *metrics.ClickMetrics) Option {
	return func(s *Scheduler) { s.metrics = m }
}

// WithIdempotencyTTL sets how long idempotency keys survive. Zero keeps
// keys forever.
func WithIdempotencyTTL(d time.Duration) Option {
	return func(s *Scheduler) { s.idempotencyTTL = d }
}

func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// New parses spec and registers the job. The scheduler does nothing until
// Start is called.
func New(store Store, spec string, opts ...Option) (*Scheduler, error) {
	s := &Scheduler{
		store:          store,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:            time.Now,
		idempotencyTTL: 24 * time.Hour,
		runTimeout:     10 * time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.cron = cron.New(cron.WithLocation(time.UTC))
	if _, err := s.cron.AddFunc(spec, s.runScheduled); err != nil {
		return nil, fmt.Errorf("rollup schedule %q: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("rollup scheduler started", slog.Time("next_run", s.cron.Entries()[0].Next))
}

// Stop prevents new runs and waits for a running job or ctx, whichever
// comes first.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) runScheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), s.runTimeout)
	defer cancel()
	_ = s.Run(ctx)
}

// Run refreshes the today counters from the start of the current UTC day
// and purges expired idempotency keys. Both steps are attempted even if
// the first one fails.
func (s *Scheduler) Run(ctx context.Context) error {
	now := s.now().UTC()

	refreshed, refreshErr := s.store.RefreshDailyAggregates(ctx, domain.StartOfUTCDay(now))
	if refreshErr != nil {
		refreshErr = fmt.Errorf("refresh daily aggregates: %w", refreshErr)
	}

	var (
		purged   int64
		purgeErr error
	)
	if s.idempotencyTTL > 0 {
		purged, purgeErr = s.store.PurgeIdempotencyKeys(ctx, now.Add(-s.idempotencyTTL))
		if purgeErr != nil {
			purgeErr = fmt.Errorf("purge idempotency keys: %w", purgeErr)
		}
	}

	if err := errors.Join(refreshErr, purgeErr); err != nil {
		s.metrics.IncRollup("error")
		s.logger.Error("rollup failed", slog.Any("error", err))
		return err
	}
	s.metrics.IncRollup("ok")
	s.logger.Info("rollup finished",
		slog.Int64("campaigns_refreshed", refreshed),
		slog.Int64("idempotency_keys_purged", purged),
	)
	return nil
}
