package usecase

import (
	"context"
	"fmt"

	"cpc-billing/internal/core/domain"
	"cpc-billing/internal/core/port"
)

// precheck evaluates the budget outside any transaction so that exhausted
// campaigns are turned away without taking locks. It never rejects for
// balance: that path must run in the transaction, which also pauses the
// campaign.
func (u *ClickUseCase) precheck(ctx context.Context, camp *domain.Campaign) error {
	adv, err := u.repo.GetAdvertiser(ctx, camp.AdvertiserID)
	if err != nil {
		return fmt.Errorf("load advertiser: %w", err)
	}
	if adv == nil || !adv.IsActive {
		return port.ErrCampaignNotFound
	}
	today, err := u.repo.SumClicksSince(ctx, camp.ID, domain.StartOfUTCDay(u.now()))
	if err != nil {
		return fmt.Errorf("sum daily spend: %w", err)
	}
	a := u.policy.Assess(adv.Balance, camp.BidAmount, today, camp.DailyBudget)
	if a.Verdict == domain.VerdictBudgetExceeded {
		return budgetExceeded(camp, a)
	}
	return nil
}

func budgetExceeded(camp *domain.Campaign, a domain.Assessment) *port.DailyBudgetExceededError {
	return &port.DailyBudgetExceededError{
		CampaignID:        camp.ID,
		DailySpent:        a.TodaySpent,
		DailyBudget:       a.DailyBudget,
		BudgetWithReserve: a.ReserveCeiling,
	}
}
