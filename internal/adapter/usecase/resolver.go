package usecase

import (
	"context"
	"fmt"

	"cpc-billing/internal/core/domain"
	"cpc-billing/internal/core/port"
)

// resolve finds the campaign to bill for the click. An explicit campaign id
// must belong to the product; otherwise the repository picks the oldest
// eligible campaign.
func (u *ClickUseCase) resolve(ctx context.Context, req port.ClickRequest) (*domain.Campaign, error) {
	if req.ProductID == "" {
		return nil, port.ErrCampaignNotFound
	}
	c, err := u.repo.FindEligibleCampaign(ctx, req.ProductID, req.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("resolve campaign: %w", err)
	}
	if c == nil || !c.Chargeable() || c.ProductID != req.ProductID {
		return nil, port.ErrCampaignNotFound
	}
	if req.CampaignID != nil && c.ID != *req.CampaignID {
		return nil, port.ErrCampaignNotFound
	}
	return c, nil
}
