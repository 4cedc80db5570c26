package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignDraft  CampaignStatus = "draft"
	CampaignActive CampaignStatus = "active"
	CampaignPaused CampaignStatus = "paused"
)

// Campaign represents a CPC campaign bidding on a single product.
// Amounts are fixed-point decimals with two fractional digits.
// TodaySpent and TodayClicks are a cache derived from the click ledger.
type Campaign struct {
	ID           uuid.UUID
	AdvertiserID uuid.UUID
	ProductID    string
	Name         string
	Status       CampaignStatus
	IsApproved   bool
	BidAmount    decimal.Decimal // cost per click
	DailyBudget  decimal.Decimal
	TotalSpent   decimal.Decimal
	TotalClicks  int64
	TodaySpent   decimal.Decimal
	TodayClicks  int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Chargeable reports whether clicks on the campaign may be billed.
func (c *Campaign) Chargeable() bool {
	return c.Status == CampaignActive && c.IsApproved
}
