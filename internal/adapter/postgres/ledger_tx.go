package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"cpc-billing/internal/core/domain"
)

const (
	reserveIdempotencyKeySQL   = `INSERT INTO click_idempotency_keys (key, request_hash, created_at) VALUES ($1, $2, now()) ON CONFLICT (key) DO NOTHING`
	getIdempotencyKeySQL       = `SELECT key, request_hash, outcome, created_at FROM click_idempotency_keys WHERE key = $1`
	storeIdempotencyOutcomeSQL = `UPDATE click_idempotency_keys SET outcome = $1 WHERE key = $2`

	lockCampaignSQL   = `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1 FOR UPDATE`
	lockAdvertiserSQL = `SELECT ` + advertiserColumns + ` FROM advertisers WHERE id = $1 FOR UPDATE`
	hasRecentClickSQL = `SELECT EXISTS (SELECT 1 FROM click_records WHERE campaign_id = $1 AND requester_ip = $2 AND timestamp >= $3)`

	debitBalanceSQL  = `UPDATE advertisers SET balance = balance - $1, total_spent = total_spent + $1, updated_at = now() WHERE id = $2 AND balance >= $1 RETURNING balance::text`
	creditBalanceSQL = `UPDATE advertisers SET balance = balance + $1, updated_at = now() WHERE id = $2 RETURNING balance::text`

	insertBillingRecordSQL      = `INSERT INTO billing_records (id, advertiser_id, campaign_id, click_id, type, amount, description, status, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	insertClickRecordSQL        = `INSERT INTO click_records (id, campaign_id, advertiser_id, product_id, cost_per_click, requester_ip, user_agent, referrer, timestamp) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	updateCampaignAggregatesSQL = `UPDATE campaigns SET today_spent = $1, today_clicks = $2, total_spent = total_spent + $3, total_clicks = total_clicks + 1, updated_at = now() WHERE id = $4`
	pauseCampaignSQL            = `UPDATE campaigns SET status = 'paused', updated_at = now() WHERE id = $1`
)

// ledgerTx implements port.LedgerTx on an open pgx transaction. Errors are
// classified once by InTx.
type ledgerTx struct {
	tx pgx.Tx
}

func (t *ledgerTx) ReserveIdempotencyKey(ctx context.Context, key, requestHash string) (*domain.IdempotencyRecord, error) {
	tag, err := t.tx.Exec(ctx, reserveIdempotencyKeySQL, key, requestHash)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 1 {
		return nil, nil
	}
	// The key existed, or a concurrent holder committed it while we waited
	// on the unique index.
	var rec domain.IdempotencyRecord
	err = t.tx.QueryRow(ctx, getIdempotencyKeySQL, key).
		Scan(&rec.Key, &rec.RequestHash, &rec.Outcome, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (t *ledgerTx) StoreIdempotencyOutcome(ctx context.Context, key string, outcome []byte) error {
	_, err := t.tx.Exec(ctx, storeIdempotencyOutcomeSQL, outcome, key)
	return err
}

func (t *ledgerTx) LockCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := scanCampaign(t.tx.QueryRow(ctx, lockCampaignSQL, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return c, err
}

func (t *ledgerTx) LockAdvertiser(ctx context.Context, id uuid.UUID) (*domain.Advertiser, error) {
	a, err := scanAdvertiser(t.tx.QueryRow(ctx, lockAdvertiserSQL, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return a, err
}

func (t *ledgerTx) SumClicksSince(ctx context.Context, campaignID uuid.UUID, since time.Time) (domain.DailySpend, error) {
	return scanDailySpend(t.tx.QueryRow(ctx, sumClicksSinceSQL, campaignID, since))
}

func (t *ledgerTx) HasRecentClick(ctx context.Context, campaignID uuid.UUID, requesterIP string, since time.Time) (bool, error) {
	var exists bool
	err := t.tx.QueryRow(ctx, hasRecentClickSQL, campaignID, requesterIP, since).Scan(&exists)
	return exists, err
}

func (t *ledgerTx) DebitBalance(ctx context.Context, advertiserID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, bool, error) {
	var raw string
	err := t.tx.QueryRow(ctx, debitBalanceSQL, amount.String(), advertiserID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, err
	}
	var balance decimal.Decimal
	if err = parseDecimals(field{"balance", raw, &balance}); err != nil {
		return decimal.Zero, false, err
	}
	return balance, true, nil
}

func (t *ledgerTx) CreditBalance(ctx context.Context, advertiserID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	var raw string
	if err := t.tx.QueryRow(ctx, creditBalanceSQL, amount.String(), advertiserID).Scan(&raw); err != nil {
		return decimal.Zero, err
	}
	var balance decimal.Decimal
	if err := parseDecimals(field{"balance", raw, &balance}); err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

func (t *ledgerTx) InsertBillingRecord(ctx context.Context, rec *domain.BillingRecord) error {
	_, err := t.tx.Exec(ctx, insertBillingRecordSQL,
		rec.ID, rec.AdvertiserID, rec.CampaignID, rec.ClickID, string(rec.Type),
		rec.Amount.String(), rec.Description, rec.Status, rec.CreatedAt)
	return err
}

func (t *ledgerTx) InsertClickRecord(ctx context.Context, click *domain.ClickRecord) error {
	_, err := t.tx.Exec(ctx, insertClickRecordSQL,
		click.ID, click.CampaignID, click.AdvertiserID, click.ProductID, click.CostPerClick.String(),
		click.RequesterIP, click.UserAgent, click.Referrer, click.Timestamp)
	return err
}

func (t *ledgerTx) UpdateCampaignAggregates(ctx context.Context, campaignID uuid.UUID, today domain.DailySpend, cost decimal.Decimal) error {
	_, err := t.tx.Exec(ctx, updateCampaignAggregatesSQL, today.Amount.String(), today.Clicks, cost.String(), campaignID)
	return err
}

func (t *ledgerTx) PauseCampaign(ctx context.Context, id uuid.UUID) error {
	_, err := t.tx.Exec(ctx, pauseCampaignSQL, id)
	return err
}
