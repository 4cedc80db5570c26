package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cpc-billing/internal/core/domain"
)

// ClickUseCase is the primary port into the billing engine. Mock
// implementations are generated from this interface for testing.
type ClickUseCase interface {
	// ProcessClick resolves the campaign for a product click, checks
	// affordability and the daily budget, and charges the advertiser
	// atomically. Business rejections are returned as typed errors from
	// errors.go; any other error is internal.
	ProcessClick(ctx context.Context, req ClickRequest) (*ClickResult, error)

	// CampaignStats returns the cached campaign aggregates together with
	// the values recomputed from the click ledger.
	CampaignStats(ctx context.Context, campaignID uuid.UUID) (*CampaignStats, error)
}

// ClickRequest is a single click event. CampaignID is optional; without it
// the engine picks the oldest eligible campaign for the product.
// IdempotencyKey, when set, makes retries of the same click free.
type ClickRequest struct {
	ProductID      string
	CampaignID     *uuid.UUID
	Client         domain.ClickContext
	IdempotencyKey string
}

// ClickResult describes a successful charge.
type ClickResult struct {
	ClickID          uuid.UUID             `json:"click_id"`
	CampaignID       uuid.UUID             `json:"campaign_id"`
	CampaignName     string                `json:"campaign_name"`
	Cost             decimal.Decimal       `json:"cost"`
	RemainingBalance decimal.Decimal       `json:"remaining_balance"`
	AutoRecharged    *decimal.Decimal      `json:"auto_recharged,omitempty"`
	Warning          *domain.BudgetWarning `json:"warning,omitempty"`
	Replayed         bool                  `json:"replayed,omitempty"`
}

// CampaignStats compares the campaign cache with the ledger.
type CampaignStats struct {
	CampaignID        uuid.UUID             `json:"campaign_id"`
	Name              string                `json:"name"`
	Status            domain.CampaignStatus `json:"status"`
	DailyBudget       decimal.Decimal       `json:"daily_budget"`
	TotalSpent        decimal.Decimal       `json:"total_spent"`
	TotalClicks       int64                 `json:"total_clicks"`
	TodaySpent        decimal.Decimal       `json:"today_spent"`
	TodayClicks       int64                 `json:"today_clicks"`
	LedgerTodaySpent  decimal.Decimal       `json:"ledger_today_spent"`
	LedgerTodayClicks int64                 `json:"ledger_today_clicks"`
}

// InSync reports whether the cached daily counters match the ledger.
func (s *CampaignStats) InSync() bool {
	return s.TodaySpent.Equal(s.LedgerTodaySpent) && s.TodayClicks == s.LedgerTodayClicks
}
