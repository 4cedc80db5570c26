package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"cpc-billing/internal/core/domain"
	"cpc-billing/internal/core/port"
)

// DB is the subset of *pgxpool.Pool used by the repository.
type DB interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	findEligibleCampaignSQL = `SELECT ` + campaignColumns + ` FROM campaigns WHERE product_id = $1 AND status = 'active' AND is_approved AND ($2::uuid IS NULL OR id = $2) ORDER BY created_at ASC, id ASC LIMIT 1`
	getCampaignSQL          = `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`
	getAdvertiserSQL        = `SELECT ` + advertiserColumns + ` FROM advertisers WHERE id = $1`
	sumClicksSinceSQL       = `SELECT COALESCE(SUM(cost_per_click), 0)::text, COUNT(*) FROM click_records WHERE campaign_id = $1 AND timestamp >= $2`

	lockAllCampaignsSQL       = `SELECT id FROM campaigns ORDER BY id FOR UPDATE`
	refreshDailyAggregatesSQL = `UPDATE campaigns c SET
today_spent = COALESCE((SELECT SUM(r.cost_per_click) FROM click_records r WHERE r.campaign_id = c.id AND r.timestamp >= $1), 0),
today_clicks = (SELECT COUNT(*) FROM click_records r WHERE r.campaign_id = c.id AND r.timestamp >= $1),
updated_at = now()`

	purgeIdempotencyKeysSQL = `DELETE FROM click_idempotency_keys WHERE created_at < $1`
	insertClickHistorySQL   = `INSERT INTO click_history (id, user_id, product_id, campaign_id, click_id, clicked_at) VALUES ($1, $2, $3, $4, $5, $6)`
)

// LedgerRepository implements port.LedgerRepository and port.AttributionSink
// on PostgreSQL.
type LedgerRepository struct {
	db          DB
	txTimeout   time.Duration
	lockTimeout time.Duration
}

// Option configures a LedgerRepository.
type Option func(*LedgerRepository)

// WithTxTimeout bounds the lifetime of every billing transaction.
func WithTxTimeout(d time.Duration) Option {
	return func(r *LedgerRepository) { r.txTimeout = d }
}

// WithLockTimeout sets lock_timeout for the row locks taken inside InTx.
func WithLockTimeout(d time.Duration) Option {
	return func(r *LedgerRepository) { r.lockTimeout = d }
}

// NewLedgerRepository returns a repository over db, usually a *pgxpool.Pool.
func NewLedgerRepository(db DB, opts ...Option) *LedgerRepository {
	r := &LedgerRepository{db: db}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *LedgerRepository) FindEligibleCampaign(ctx context.Context, productID string, campaignID *uuid.UUID) (*domain.Campaign, error) {
	c, err := scanCampaign(r.db.QueryRow(ctx, findEligibleCampaignSQL, productID, campaignID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify(err)
	}
	return c, nil
}

func (r *LedgerRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := scanCampaign(r.db.QueryRow(ctx, getCampaignSQL, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify(err)
	}
	return c, nil
}

func (r *LedgerRepository) GetAdvertiser(ctx context.Context, id uuid.UUID) (*domain.Advertiser, error) {
	a, err := scanAdvertiser(r.db.QueryRow(ctx, getAdvertiserSQL, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify(err)
	}
	return a, nil
}

func (r *LedgerRepository) SumClicksSince(ctx context.Context, campaignID uuid.UUID, since time.Time) (domain.DailySpend, error) {
	s, err := scanDailySpend(r.db.QueryRow(ctx, sumClicksSinceSQL, campaignID, since))
	if err != nil {
		return domain.DailySpend{}, classify(err)
	}
	return s, nil
}

// RefreshDailyAggregates locks every campaign before aggregating, so clicks
// still in flight commit first and the recount sees them.
func (r *LedgerRepository) RefreshDailyAggregates(ctx context.Context, since time.Time) (n int64, err error) {
	err = r.inTx(ctx, 0, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, lockAllCampaignsSQL); err != nil {
			return fmt.Errorf("lock campaigns: %w", err)
		}
		tag, err := tx.Exec(ctx, refreshDailyAggregatesSQL, since)
		if err != nil {
			return fmt.Errorf("refresh aggregates: %w", err)
		}
		n = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (r *LedgerRepository) PurgeIdempotencyKeys(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, purgeIdempotencyKeysSQL, before)
	if err != nil {
		return 0, classify(err)
	}
	return tag.RowsAffected(), nil
}

// InTx runs fn in a READ COMMITTED transaction. Serialization of concurrent
// clicks comes from the FOR UPDATE row locks taken through LedgerTx.
func (r *LedgerRepository) InTx(ctx context.Context, fn func(ctx context.Context, tx port.LedgerTx) error) error {
	return r.inTx(ctx, r.txTimeout, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, &ledgerTx{tx: tx})
	})
}

// inTx bounds the transaction by timeout when it is positive and applies
// the configured lock_timeout.
func (r *LedgerRepository) inTx(ctx context.Context, timeout time.Duration, fn func(ctx context.Context, tx pgx.Tx) error) (err error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return classify(fmt.Errorf("begin tx: %w", err))
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
		}
	}()

	if r.lockTimeout > 0 {
		if _, err = tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.lockTimeout.Milliseconds())); err != nil {
			return classify(fmt.Errorf("set lock timeout: %w", err))
		}
	}

	if err = fn(ctx, tx); err != nil {
		return classify(err)
	}
	if err = tx.Commit(ctx); err != nil {
		return classify(fmt.Errorf("commit: %w", err))
	}
	return nil
}

// RecordClick implements port.AttributionSink.
func (r *LedgerRepository) RecordClick(ctx context.Context, h domain.ClickHistory) error {
	_, err := r.db.Exec(ctx, insertClickHistorySQL, h.ID, h.UserID, h.ProductID, h.CampaignID, h.ClickID, h.ClickedAt)
	return err
}
