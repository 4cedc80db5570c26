package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClickRecord is an append-only ledger entry written for every charged
// click. CostPerClick is the bid at charge time.
type ClickRecord struct {
	ID           uuid.UUID
	CampaignID   uuid.UUID
	AdvertiserID uuid.UUID
	ProductID    string
	CostPerClick decimal.Decimal
	RequesterIP  string
	UserAgent    string
	Referrer     string
	Timestamp    time.Time
}

// BillingType names the cause of a balance mutation.
type BillingType string

const (
	BillingSpend        BillingType = "spend"
	BillingCharge       BillingType = "charge"
	BillingAutoRecharge BillingType = "auto_recharge"
	BillingCredit       BillingType = "credit"
	BillingPayment      BillingType = "payment"
)

const BillingStatusCompleted = "completed"

// BillingRecord is an append-only ledger entry, one per balance mutation.
type BillingRecord struct {
	ID           uuid.UUID
	AdvertiserID uuid.UUID
	CampaignID   *uuid.UUID
	ClickID      *uuid.UUID
	Type         BillingType
	Amount       decimal.Decimal
	Description  string
	Status       string
	CreatedAt    time.Time
}

// ClickHistory is the attribution entry appended for logged-in visitors.
type ClickHistory struct {
	ID         uuid.UUID
	UserID     string
	ProductID  string
	CampaignID uuid.UUID
	ClickID    uuid.UUID
	ClickedAt  time.Time
}

// DailySpend is the ledger aggregate of charged clicks since a point in time.
type DailySpend struct {
	Amount decimal.Decimal
	Clicks int64
}

// StartOfUTCDay truncates t to midnight UTC.
func StartOfUTCDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
