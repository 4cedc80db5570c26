package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cpc-billing/internal/core/domain"
)

// LedgerRepository is the persistence port of the billing engine. Lookups
// return nil without an error when the row does not exist. Implementations
// must be safe for concurrent use; all balance and campaign mutations go
// through InTx.
type LedgerRepository interface {
	// FindEligibleCampaign returns the active, approved campaign for the
	// product. When campaignID is nil the oldest eligible campaign wins,
	// ties broken by id.
	FindEligibleCampaign(ctx context.Context, productID string, campaignID *uuid.UUID) (*domain.Campaign, error)
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	GetAdvertiser(ctx context.Context, id uuid.UUID) (*domain.Advertiser, error)
	// SumClicksSince aggregates charged clicks of a campaign from the ledger.
	SumClicksSince(ctx context.Context, campaignID uuid.UUID, since time.Time) (domain.DailySpend, error)
	// RefreshDailyAggregates rewrites the today counters of every campaign
	// from the ledger and returns the number of campaigns touched.
	RefreshDailyAggregates(ctx context.Context, since time.Time) (int64, error)
	// PurgeIdempotencyKeys deletes keys created before the cut-off.
	PurgeIdempotencyKeys(ctx context.Context, before time.Time) (int64, error)

	// InTx runs fn in a single transaction. The transaction commits when fn
	// returns nil and rolls back otherwise. Errors caused by contention or
	// timeouts are reported as ErrTransientStore.
	InTx(ctx context.Context, fn func(ctx context.Context, tx LedgerTx) error) error
}

// LedgerTx is the set of operations available inside a billing transaction.
// Lock methods take row locks that are held until the transaction ends;
// callers lock the campaign before its advertiser.
type LedgerTx interface {
	// ReserveIdempotencyKey claims key for this transaction. It returns nil
	// when the key is new and the previously stored record otherwise.
	ReserveIdempotencyKey(ctx context.Context, key, requestHash string) (*domain.IdempotencyRecord, error)
	StoreIdempotencyOutcome(ctx context.Context, key string, outcome []byte) error

	LockCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	LockAdvertiser(ctx context.Context, id uuid.UUID) (*domain.Advertiser, error)
	SumClicksSince(ctx context.Context, campaignID uuid.UUID, since time.Time) (domain.DailySpend, error)
	HasRecentClick(ctx context.Context, campaignID uuid.UUID, requesterIP string, since time.Time) (bool, error)

	// DebitBalance subtracts amount only if the balance covers it. ok is
	// false when nothing was debited.
	DebitBalance(ctx context.Context, advertiserID uuid.UUID, amount decimal.Decimal) (balance decimal.Decimal, ok bool, err error)
	CreditBalance(ctx context.Context, advertiserID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
	InsertBillingRecord(ctx context.Context, rec *domain.BillingRecord) error
	InsertClickRecord(ctx context.Context, click *domain.ClickRecord) error
	// UpdateCampaignAggregates stores the recomputed today counters and adds
	// cost and one click to the lifetime totals.
	UpdateCampaignAggregates(ctx context.Context, campaignID uuid.UUID, today domain.DailySpend, cost decimal.Decimal) error
	PauseCampaign(ctx context.Context, id uuid.UUID) error
}

// AttributionSink receives best-effort "user clicked product" events for
// logged-in visitors. Failures never affect billing.
type AttributionSink interface {
	RecordClick(ctx context.Context, h domain.ClickHistory) error
}
