package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cpc-billing/internal/core/domain"
	"cpc-billing/internal/core/port"
)

// txOutcome is what a committed billing transaction produced: a charge or
// a rejection whose side effects were committed.
type txOutcome struct {
	result    *port.ClickResult
	rejection error
}

// storedOutcome is what an idempotency key replays. Only committed outcomes
// are stored: a charge, or a balance rejection that paused the campaign.
type storedOutcome struct {
	Result              *port.ClickResult              `json:"result,omitempty"`
	InsufficientBalance *port.InsufficientBalanceError `json:"insufficient_balance,omitempty"`
}

// charge runs the authoritative billing transaction. Business rejections
// that leave durable state (the pause on insufficient balance) commit and
// are returned after the transaction; all others roll back. camp is nil
// when resolution failed for a keyed request: only a stored outcome can
// answer it.
func (u *ClickUseCase) charge(ctx context.Context, camp *domain.Campaign, req port.ClickRequest) (*port.ClickResult, error) {
	var (
		out  txOutcome
		hash = requestHash(req)
	)

	err := u.repo.InTx(ctx, func(ctx context.Context, tx port.LedgerTx) error {
		out = txOutcome{}

		if req.IdempotencyKey != "" {
			rec, err := tx.ReserveIdempotencyKey(ctx, req.IdempotencyKey, hash)
			if err != nil {
				return fmt.Errorf("reserve idempotency key: %w", err)
			}
			if rec != nil {
				if rec.RequestHash != hash {
					return port.ErrIdempotencyMismatch
				}
				out, err = decodeOutcome(rec)
				return err
			}
		}

		if camp == nil {
			return port.ErrCampaignNotFound
		}

		var err error
		if out, err = u.chargeLocked(ctx, tx, camp.ID, req); err != nil {
			return err
		}

		if req.IdempotencyKey != "" {
			outcome, err := json.Marshal(storedOutcome{Result: out.result, InsufficientBalance: asBalanceErr(out.rejection)})
			if err != nil {
				return err
			}
			if err = tx.StoreIdempotencyOutcome(ctx, req.IdempotencyKey, outcome); err != nil {
				return fmt.Errorf("store idempotency outcome: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out.rejection != nil {
		return nil, out.rejection
	}
	return out.result, nil
}

// chargeLocked performs steps that need the campaign and advertiser rows
// locked. A non-nil error aborts the transaction.
func (u *ClickUseCase) chargeLocked(ctx context.Context, tx port.LedgerTx, campaignID uuid.UUID, req port.ClickRequest) (txOutcome, error) {
	now := u.now().UTC()
	dayStart := domain.StartOfUTCDay(now)

	c, err := tx.LockCampaign(ctx, campaignID)
	if err != nil {
		return txOutcome{}, fmt.Errorf("lock campaign: %w", err)
	}
	if c == nil || !c.IsApproved || c.ProductID != req.ProductID {
		return txOutcome{}, port.ErrCampaignNotFound
	}

	adv, err := tx.LockAdvertiser(ctx, c.AdvertiserID)
	if err != nil {
		return txOutcome{}, fmt.Errorf("lock advertiser: %w", err)
	}
	if adv == nil || !adv.IsActive {
		return txOutcome{}, port.ErrCampaignNotFound
	}

	if c.Status != domain.CampaignActive {
		// Paused by a concurrent click that ran the balance dry.
		if c.Status == domain.CampaignPaused && !adv.CanAfford(c.BidAmount) {
			return txOutcome{rejection: insufficientBalance(c, adv.Balance)}, nil
		}
		return txOutcome{}, port.ErrCampaignNotFound
	}

	if u.duplicateWindow > 0 && req.Client.IP != "" {
		dup, err := tx.HasRecentClick(ctx, c.ID, req.Client.IP, now.Add(-u.duplicateWindow))
		if err != nil {
			return txOutcome{}, fmt.Errorf("check recent clicks: %w", err)
		}
		if dup {
			return txOutcome{}, &port.DuplicateClickError{
				CampaignID:  c.ID,
				RequesterIP: req.Client.IP,
				Window:      u.duplicateWindow.String(),
			}
		}
	}

	today, err := tx.SumClicksSince(ctx, c.ID, dayStart)
	if err != nil {
		return txOutcome{}, fmt.Errorf("sum daily spend: %w", err)
	}
	a := u.policy.Assess(adv.Balance, c.BidAmount, today, c.DailyBudget)
	switch a.Verdict {
	case domain.VerdictInsufficientBalance:
		return pauseForBalance(ctx, tx, c, adv.Balance)
	case domain.VerdictBudgetExceeded:
		return txOutcome{}, budgetExceeded(c, a)
	}

	balance, ok, err := tx.DebitBalance(ctx, adv.ID, c.BidAmount)
	if err != nil {
		return txOutcome{}, fmt.Errorf("debit balance: %w", err)
	}
	if !ok {
		return pauseForBalance(ctx, tx, c, adv.Balance)
	}

	click := &domain.ClickRecord{
		ID:           uuid.New(),
		CampaignID:   c.ID,
		AdvertiserID: adv.ID,
		ProductID:    c.ProductID,
		CostPerClick: c.BidAmount,
		RequesterIP:  req.Client.IP,
		UserAgent:    req.Client.UserAgent,
		Referrer:     req.Client.Referrer,
		Timestamp:    now,
	}
	err = tx.InsertBillingRecord(ctx, &domain.BillingRecord{
		ID:           uuid.New(),
		AdvertiserID: adv.ID,
		CampaignID:   &c.ID,
		ClickID:      &click.ID,
		Type:         domain.BillingSpend,
		Amount:       c.BidAmount,
		Description:  fmt.Sprintf("Click cost for campaign: %s", c.Name),
		Status:       domain.BillingStatusCompleted,
		CreatedAt:    now,
	})
	if err != nil {
		return txOutcome{}, fmt.Errorf("insert spend record: %w", err)
	}

	var recharged *decimal.Decimal
	if adv.NeedsAutoRecharge(balance) {
		trigger := balance
		balance, err = tx.CreditBalance(ctx, adv.ID, adv.AutoRechargeAmount)
		if err != nil {
			return txOutcome{}, fmt.Errorf("auto-recharge credit: %w", err)
		}
		err = tx.InsertBillingRecord(ctx, &domain.BillingRecord{
			ID:           uuid.New(),
			AdvertiserID: adv.ID,
			CampaignID:   &c.ID,
			Type:         domain.BillingAutoRecharge,
			Amount:       adv.AutoRechargeAmount,
			Description: fmt.Sprintf("Auto-recharge: balance %s fell below threshold %s",
				trigger.StringFixed(2), adv.AutoRechargeThreshold.StringFixed(2)),
			Status:    domain.BillingStatusCompleted,
			CreatedAt: now,
		})
		if err != nil {
			return txOutcome{}, fmt.Errorf("insert auto-recharge record: %w", err)
		}
		amount := adv.AutoRechargeAmount
		recharged = &amount
	}

	if err = tx.InsertClickRecord(ctx, click); err != nil {
		return txOutcome{}, fmt.Errorf("insert click record: %w", err)
	}

	today, err = tx.SumClicksSince(ctx, c.ID, dayStart)
	if err != nil {
		return txOutcome{}, fmt.Errorf("recompute daily spend: %w", err)
	}
	if err = tx.UpdateCampaignAggregates(ctx, c.ID, today, c.BidAmount); err != nil {
		return txOutcome{}, fmt.Errorf("update campaign aggregates: %w", err)
	}

	return txOutcome{result: &port.ClickResult{
		ClickID:          click.ID,
		CampaignID:       c.ID,
		CampaignName:     c.Name,
		Cost:             c.BidAmount,
		RemainingBalance: balance,
		AutoRecharged:    recharged,
		Warning:          a.Warning,
	}}, nil
}

func pauseForBalance(ctx context.Context, tx port.LedgerTx, c *domain.Campaign, balance decimal.Decimal) (txOutcome, error) {
	if err := tx.PauseCampaign(ctx, c.ID); err != nil {
		return txOutcome{}, fmt.Errorf("pause campaign: %w", err)
	}
	return txOutcome{rejection: insufficientBalance(c, balance)}, nil
}

func insufficientBalance(c *domain.Campaign, balance decimal.Decimal) *port.InsufficientBalanceError {
	return &port.InsufficientBalanceError{
		CampaignID:     c.ID,
		Balance:        balance,
		Required:       c.BidAmount,
		CampaignPaused: true,
	}
}

func decodeOutcome(rec *domain.IdempotencyRecord) (txOutcome, error) {
	if len(rec.Outcome) == 0 {
		return txOutcome{}, fmt.Errorf("idempotency key %q has no stored outcome: %w", rec.Key, port.ErrTransientStore)
	}
	var stored storedOutcome
	if err := json.Unmarshal(rec.Outcome, &stored); err != nil {
		return txOutcome{}, fmt.Errorf("decode idempotency outcome: %w", err)
	}
	if stored.InsufficientBalance != nil {
		return txOutcome{rejection: stored.InsufficientBalance}, nil
	}
	if stored.Result == nil {
		return txOutcome{}, fmt.Errorf("idempotency key %q has an empty outcome", rec.Key)
	}
	stored.Result.Replayed = true
	return txOutcome{result: stored.Result}, nil
}

func asBalanceErr(err error) *port.InsufficientBalanceError {
	if e, ok := err.(*port.InsufficientBalanceError); ok {
		return e
	}
	return nil
}

// requestHash fingerprints the parts of a click that an idempotent retry
// must repeat.
func requestHash(req port.ClickRequest) string {
	campaign := ""
	if req.CampaignID != nil {
		campaign = req.CampaignID.String()
	}
	sum := sha256.Sum256([]byte(req.ProductID + "\x00" + campaign + "\x00" + req.Client.SessionUserID))
	return hex.EncodeToString(sum[:])
}
