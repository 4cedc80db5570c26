// Package memory provides an in-process implementation of the ledger ports.
// Transactions are serialized by a single mutex and applied to a private
// copy of the state, so a rolled-back transaction leaves nothing behind.
package memory

import (
	"context"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cpc-billing/internal/core/domain"
	"cpc-billing/internal/core/port"
)

type state struct {
	advertisers map[uuid.UUID]domain.Advertiser
	campaigns   map[uuid.UUID]domain.Campaign
	clicks      []domain.ClickRecord
	billing     []domain.BillingRecord
	keys        map[string]domain.IdempotencyRecord
}

func (s *state) clone() *state {
	return &state{
		advertisers: maps.Clone(s.advertisers),
		campaigns:   maps.Clone(s.campaigns),
		clicks:      slices.Clone(s.clicks),
		billing:     slices.Clone(s.billing),
		keys:        maps.Clone(s.keys),
	}
}

// Ledger implements port.LedgerRepository and port.AttributionSink.
type Ledger struct {
	mu      sync.RWMutex
	st      *state
	history []domain.ClickHistory
}

func NewLedger() *Ledger {
	return &Ledger{st: &state{
		advertisers: make(map[uuid.UUID]domain.Advertiser),
		campaigns:   make(map[uuid.UUID]domain.Campaign),
		keys:        make(map[string]domain.IdempotencyRecord),
	}}
}

// PutAdvertiser inserts or replaces an advertiser.
func (l *Ledger) PutAdvertiser(a domain.Advertiser) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.st.advertisers[a.ID] = a
}

// PutCampaign inserts or replaces a campaign.
func (l *Ledger) PutCampaign(c domain.Campaign) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.st.campaigns[c.ID] = c
}

// PutClick appends a click record outside of any billing transaction.
func (l *Ledger) PutClick(c domain.ClickRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.st.clicks = append(l.st.clicks, c)
}

func (l *Ledger) Clicks(campaignID uuid.UUID) []domain.ClickRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []domain.ClickRecord
	for _, c := range l.st.clicks {
		if c.CampaignID == campaignID {
			out = append(out, c)
		}
	}
	return out
}

func (l *Ledger) BillingRecords(advertiserID uuid.UUID) []domain.BillingRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []domain.BillingRecord
	for _, b := range l.st.billing {
		if b.AdvertiserID == advertiserID {
			out = append(out, b)
		}
	}
	return out
}

func (l *Ledger) History() []domain.ClickHistory {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.history)
}

func (l *Ledger) FindEligibleCampaign(_ context.Context, productID string, campaignID *uuid.UUID) (*domain.Campaign, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var candidates []domain.Campaign
	for _, c := range l.st.campaigns {
		if c.ProductID != productID || !c.Chargeable() {
			continue
		}
		if campaignID != nil && c.ID != *campaignID {
			continue
		}
		candidates = append(candidates, c)
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		if !candidates[i].CreatedAt.Equal(candidates[j].CreatedAt) {
			return candidates[i].CreatedAt.Before(candidates[j].CreatedAt)
		}
		return candidates[i].ID.String() < candidates[j].ID.String()
	})
	return &candidates[0], nil
}

func (l *Ledger) GetCampaign(_ context.Context, id uuid.UUID) (*domain.Campaign, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if c, ok := l.st.campaigns[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (l *Ledger) GetAdvertiser(_ context.Context, id uuid.UUID) (*domain.Advertiser, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if a, ok := l.st.advertisers[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (l *Ledger) SumClicksSince(_ context.Context, campaignID uuid.UUID, since time.Time) (domain.DailySpend, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.st.sumClicks(campaignID, since), nil
}

func (l *Ledger) RefreshDailyAggregates(_ context.Context, since time.Time) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for id, c := range l.st.campaigns {
		today := l.st.sumClicks(id, since)
		c.TodaySpent, c.TodayClicks = today.Amount, today.Clicks
		l.st.campaigns[id] = c
	}
	return int64(len(l.st.campaigns)), nil
}

func (l *Ledger) PurgeIdempotencyKeys(_ context.Context, before time.Time) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var n int64
	for k, rec := range l.st.keys {
		if rec.CreatedAt.Before(before) {
			delete(l.st.keys, k)
			n++
		}
	}
	return n, nil
}

// InTx serializes fn against every other transaction and applies its
// writes only when fn succeeds.
func (l *Ledger) InTx(ctx context.Context, fn func(ctx context.Context, tx port.LedgerTx) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return port.ErrTransientStore
	}
	tx := &ledgerTx{st: l.st.clone()}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	l.st = tx.st
	return nil
}

// RecordClick implements port.AttributionSink.
func (l *Ledger) RecordClick(_ context.Context, h domain.ClickHistory) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.history = append(l.history, h)
	return nil
}

func (s *state) sumClicks(campaignID uuid.UUID, since time.Time) domain.DailySpend {
	out := domain.DailySpend{Amount: decimal.Zero}
	for _, c := range s.clicks {
		if c.CampaignID == campaignID && !c.Timestamp.Before(since) {
			out.Amount = out.Amount.Add(c.CostPerClick)
			out.Clicks++
		}
	}
	return out
}

type ledgerTx struct {
	st *state
}

func (t *ledgerTx) ReserveIdempotencyKey(_ context.Context, key, requestHash string) (*domain.IdempotencyRecord, error) {
	if rec, ok := t.st.keys[key]; ok {
		return &rec, nil
	}
	t.st.keys[key] = domain.IdempotencyRecord{Key: key, RequestHash: requestHash, CreatedAt: time.Now().UTC()}
	return nil, nil
}

func (t *ledgerTx) StoreIdempotencyOutcome(_ context.Context, key string, outcome []byte) error {
	rec := t.st.keys[key]
	rec.Outcome = slices.Clone(outcome)
	t.st.keys[key] = rec
	return nil
}

func (t *ledgerTx) LockCampaign(_ context.Context, id uuid.UUID) (*domain.Campaign, error) {
	if c, ok := t.st.campaigns[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (t *ledgerTx) LockAdvertiser(_ context.Context, id uuid.UUID) (*domain.Advertiser, error) {
	if a, ok := t.st.advertisers[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (t *ledgerTx) SumClicksSince(_ context.Context, campaignID uuid.UUID, since time.Time) (domain.DailySpend, error) {
	return t.st.sumClicks(campaignID, since), nil
}

func (t *ledgerTx) HasRecentClick(_ context.Context, campaignID uuid.UUID, requesterIP string, since time.Time) (bool, error) {
	for _, c := range t.st.clicks {
		if c.CampaignID == campaignID && c.RequesterIP == requesterIP && !c.Timestamp.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

func (t *ledgerTx) DebitBalance(_ context.Context, advertiserID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, bool, error) {
	a, ok := t.st.advertisers[advertiserID]
	if !ok || a.Balance.LessThan(amount) {
		return a.Balance, false, nil
	}
	a.Balance = a.Balance.Sub(amount)
	a.TotalSpent = a.TotalSpent.Add(amount)
	t.st.advertisers[advertiserID] = a
	return a.Balance, true, nil
}

func (t *ledgerTx) CreditBalance(_ context.Context, advertiserID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	a := t.st.advertisers[advertiserID]
	a.Balance = a.Balance.Add(amount)
	t.st.advertisers[advertiserID] = a
	return a.Balance, nil
}

func (t *ledgerTx) InsertBillingRecord(_ context.Context, rec *domain.BillingRecord) error {
	t.st.billing = append(t.st.billing, *rec)
	return nil
}

func (t *ledgerTx) InsertClickRecord(_ context.Context, click *domain.ClickRecord) error {
	t.st.clicks = append(t.st.clicks, *click)
	return nil
}

func (t *ledgerTx) UpdateCampaignAggregates(_ context.Context, campaignID uuid.UUID, today domain.DailySpend, cost decimal.Decimal) error {
	c := t.st.campaigns[campaignID]
	c.TodaySpent, c.TodayClicks = today.Amount, today.Clicks
	c.TotalSpent = c.TotalSpent.Add(cost)
	c.TotalClicks++
	t.st.campaigns[campaignID] = c
	return nil
}

func (t *ledgerTx) PauseCampaign(_ context.Context, id uuid.UUID) error {
	c := t.st.campaigns[id]
	c.Status = domain.CampaignPaused
	t.st.campaigns[id] = c
	return nil
}
