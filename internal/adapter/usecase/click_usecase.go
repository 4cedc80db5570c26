package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"cpc-billing/internal/core/domain"
	"cpc-billing/internal/core/port"
	"cpc-billing/internal/metrics"
)

// ClickUseCase bills product clicks against CPC campaigns. It sequences the
// campaign resolver, the affordability pre-check and the billing
// transaction, and implements port.ClickUseCase.
type ClickUseCase struct {
	repo    port.LedgerRepository
	sink    port.AttributionSink
	policy  domain.BudgetPolicy
	logger  *slog.Logger
	metrics *metrics.ClickMetrics
	now     func() time.Time

	// duplicateWindow rejects repeated clicks from one IP on a campaign.
	// Zero disables the check.
	duplicateWindow    time.Duration
	attributionTimeout time.Duration
}

// Option configures a ClickUseCase.
type Option func(*ClickUseCase)

func WithBudgetPolicy(p domain.BudgetPolicy) Option {
	return func(u *ClickUseCase) { u.policy = p }
}

func WithAttributionSink(s port.AttributionSink) Option {
	return func(u *ClickUseCase) { u.sink = s }
}

func WithLogger(l *slog.Logger) Option {
	return func(u *ClickUseCase) { u.logger = l }
}

func WithMetrics(m *metrics.ClickMetrics) Option {
	return func(u *ClickUseCase) { u.metrics = m }
}

func WithDuplicateClickWindow(d time.Duration) Option {
	return func(u *ClickUseCase) { u.duplicateWindow = d }
}

func WithAttributionTimeout(d time.Duration) Option {
	return func(u *ClickUseCase) { u.attributionTimeout = d }
}

// WithClock overrides the time source used for UTC day boundaries and
// ledger timestamps.
func WithClock(now func() time.Time) Option {
	return func(u *ClickUseCase) { u.now = now }
}

// NewClickUseCase creates a use case over repo. Without options it applies
// the default 120% reserve / 80% warning policy, no duplicate-click window
// and no attribution sink.
func NewClickUseCase(repo port.LedgerRepository, opts ...Option) *ClickUseCase {
	u := &ClickUseCase{
		repo:               repo,
		policy:             domain.DefaultBudgetPolicy(),
		logger:             slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:                time.Now,
		attributionTimeout: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// ProcessClick bills a single click. See port.ClickUseCase.
func (u *ClickUseCase) ProcessClick(ctx context.Context, req port.ClickRequest) (res *port.ClickResult, err error) {
	start := time.Now()
	defer func() {
		u.metrics.ObserveClick(outcomeLabel(res, err), time.Since(start))
	}()

	camp, err := u.resolve(ctx, req)
	if err != nil {
		// A keyed retry still replays its stored outcome after the campaign
		// stopped being eligible, e.g. once it was paused.
		if req.IdempotencyKey == "" || !errors.Is(err, port.ErrCampaignNotFound) {
			u.logResult(req, nil, err)
			return nil, err
		}
		camp = nil
	}

	// A keyed retry must reach the transaction to replay its stored outcome.
	if req.IdempotencyKey == "" {
		if err = u.precheck(ctx, camp); err != nil {
			u.logResult(req, camp, err)
			return nil, err
		}
	}

	res, err = u.charge(ctx, camp, req)
	if err != nil {
		u.logResult(req, camp, err)
		return nil, err
	}
	if !res.Replayed {
		u.metrics.AddSpend(res.Cost)
		if res.AutoRecharged != nil {
			u.metrics.IncAutoRecharge()
		}
		u.attribute(ctx, req, res)
	}
	u.logger.Debug("click charged",
		slog.String("campaign_id", res.CampaignID.String()),
		slog.String("product_id", req.ProductID),
		slog.String("cost", res.Cost.String()),
		slog.String("remaining_balance", res.RemainingBalance.String()),
		slog.Bool("replayed", res.Replayed),
	)
	return res, nil
}

// CampaignStats returns cached aggregates next to the ledger recomputation
// for the current UTC day.
func (u *ClickUseCase) CampaignStats(ctx context.Context, campaignID uuid.UUID) (*port.CampaignStats, error) {
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrCampaignNotFound
	}
	ledger, err := u.repo.SumClicksSince(ctx, campaignID, domain.StartOfUTCDay(u.now()))
	if err != nil {
		return nil, err
	}
	return &port.CampaignStats{
		CampaignID:        c.ID,
		Name:              c.Name,
		Status:            c.Status,
		DailyBudget:       c.DailyBudget,
		TotalSpent:        c.TotalSpent,
		TotalClicks:       c.TotalClicks,
		TodaySpent:        c.TodaySpent,
		TodayClicks:       c.TodayClicks,
		LedgerTodaySpent:  ledger.Amount,
		LedgerTodayClicks: ledger.Clicks,
	}, nil
}

// attribute appends the click to the visitor's history. It runs after the
// billing commit under its own deadline and only logs failures.
func (u *ClickUseCase) attribute(ctx context.Context, req port.ClickRequest, res *port.ClickResult) {
	if u.sink == nil || req.Client.SessionUserID == "" {
		return
	}
	actx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.attributionTimeout)
	defer cancel()

	err := u.sink.RecordClick(actx, domain.ClickHistory{
		ID:         uuid.New(),
		UserID:     req.Client.SessionUserID,
		ProductID:  req.ProductID,
		CampaignID: res.CampaignID,
		ClickID:    res.ClickID,
		ClickedAt:  u.now().UTC(),
	})
	if err != nil {
		u.metrics.IncAttributionFailure()
		u.logger.Warn("click attribution failed",
			slog.String("user_id", req.Client.SessionUserID),
			slog.String("product_id", req.ProductID),
			slog.Any("error", err),
		)
	}
}

func (u *ClickUseCase) logResult(req port.ClickRequest, camp *domain.Campaign, err error) {
	attrs := []any{slog.String("product_id", req.ProductID), slog.Any("error", err)}
	if camp != nil {
		attrs = append(attrs, slog.String("campaign_id", camp.ID.String()))
	}
	if isRejection(err) {
		u.logger.Warn("click rejected", attrs...)
		return
	}
	u.logger.Error("click processing failed", attrs...)
}

func isRejection(err error) bool {
	return errors.Is(err, port.ErrCampaignNotFound) ||
		errors.Is(err, port.ErrInsufficientBalance) ||
		errors.Is(err, port.ErrDailyBudgetExceeded) ||
		errors.Is(err, port.ErrDuplicateClick) ||
		errors.Is(err, port.ErrIdempotencyMismatch)
}

func outcomeLabel(res *port.ClickResult, err error) string {
	switch {
	case err == nil && res != nil && res.Replayed:
		return metrics.OutcomeReplayed
	case err == nil:
		return metrics.OutcomeCharged
	case errors.Is(err, port.ErrCampaignNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, port.ErrInsufficientBalance):
		return metrics.OutcomeInsufficientBalance
	case errors.Is(err, port.ErrDailyBudgetExceeded):
		return metrics.OutcomeBudgetExceeded
	case errors.Is(err, port.ErrDuplicateClick):
		return metrics.OutcomeDuplicate
	case errors.Is(err, port.ErrIdempotencyMismatch):
		return metrics.OutcomeIdempotencyMismatch
	case errors.Is(err, port.ErrTransientStore):
		return metrics.OutcomeTransient
	default:
		return metrics.OutcomeError
	}
}
