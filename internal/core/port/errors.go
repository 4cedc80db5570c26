package port

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCampaignNotFound    = errors.New("campaign not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrDailyBudgetExceeded = errors.New("daily budget exceeded")
	ErrDuplicateClick      = errors.New("duplicate click")
	ErrIdempotencyMismatch = errors.New("idempotency key reused with a different request")
	// ErrTransientStore marks lock contention, timeouts and serialization
	// failures. Nothing was committed, so the click may be retried.
	ErrTransientStore = errors.New("transient store error")
)

// InsufficientBalanceError is returned when the advertiser cannot cover the
// bid. CampaignPaused is set when the campaign was paused as part of the
// rejection.
type InsufficientBalanceError struct {
	CampaignID     uuid.UUID       `json:"campaign_id"`
	Balance        decimal.Decimal `json:"balance"`
	Required       decimal.Decimal `json:"required"`
	CampaignPaused bool            `json:"campaign_paused"`
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for campaign %s: have %s, need %s", e.CampaignID, e.Balance, e.Required)
}

func (e *InsufficientBalanceError) Unwrap() error { return ErrInsufficientBalance }

// DailyBudgetExceededError carries the budget figures behind a rejection.
type DailyBudgetExceededError struct {
	CampaignID        uuid.UUID       `json:"campaign_id"`
	DailySpent        decimal.Decimal `json:"daily_spent"`
	DailyBudget       decimal.Decimal `json:"daily_budget"`
	BudgetWithReserve decimal.Decimal `json:"budget_with_reserve"`
}

func (e *DailyBudgetExceededError) Error() string {
	return fmt.Sprintf("daily budget exceeded for campaign %s: spent %s of %s (reserve ceiling %s)",
		e.CampaignID, e.DailySpent, e.DailyBudget, e.BudgetWithReserve)
}

func (e *DailyBudgetExceededError) Unwrap() error { return ErrDailyBudgetExceeded }

// DuplicateClickError is returned for a repeated click from the same
// requester on the same campaign within the configured window.
type DuplicateClickError struct {
	CampaignID  uuid.UUID `json:"campaign_id"`
	RequesterIP string    `json:"requester_ip"`
	Window      string    `json:"window"`
}

func (e *DuplicateClickError) Error() string {
	return fmt.Sprintf("duplicate click on campaign %s from %s within %s", e.CampaignID, e.RequesterIP, e.Window)
}

func (e *DuplicateClickError) Unwrap() error { return ErrDuplicateClick }
