package postgres

import (
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"cpc-billing/internal/core/domain"
)

// Money columns are selected as text and parsed into decimals so that no
// precision is lost on the way out of NUMERIC.
const campaignColumns = `id, advertiser_id, product_id, name, status, is_approved, bid_amount::text, daily_budget::text, total_spent::text, total_clicks, today_spent::text, today_clicks, created_at, updated_at`

const advertiserColumns = `id, name, balance::text, total_spent::text, auto_recharge_enabled, auto_recharge_threshold::text, auto_recharge_amount::text, is_active, created_at, updated_at`

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	var status, bid, budget, total, today string
	err := row.Scan(
		&c.ID,
		&c.AdvertiserID,
		&c.ProductID,
		&c.Name,
		&status,
		&c.IsApproved,
		&bid,
		&budget,
		&total,
		&c.TotalClicks,
		&today,
		&c.TodayClicks,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Status = domain.CampaignStatus(status)
	if err = parseDecimals(
		field{"bid_amount", bid, &c.BidAmount},
		field{"daily_budget", budget, &c.DailyBudget},
		field{"total_spent", total, &c.TotalSpent},
		field{"today_spent", today, &c.TodaySpent},
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanAdvertiser(row pgx.Row) (*domain.Advertiser, error) {
	var a domain.Advertiser
	var balance, total, threshold, recharge string
	err := row.Scan(
		&a.ID,
		&a.Name,
		&balance,
		&total,
		&a.AutoRechargeEnabled,
		&threshold,
		&recharge,
		&a.IsActive,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err = parseDecimals(
		field{"balance", balance, &a.Balance},
		field{"total_spent", total, &a.TotalSpent},
		field{"auto_recharge_threshold", threshold, &a.AutoRechargeThreshold},
		field{"auto_recharge_amount", recharge, &a.AutoRechargeAmount},
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func scanDailySpend(row pgx.Row) (domain.DailySpend, error) {
	var out domain.DailySpend
	var amount string
	if err := row.Scan(&amount, &out.Clicks); err != nil {
		return domain.DailySpend{}, err
	}
	if err := parseDecimals(field{"spent", amount, &out.Amount}); err != nil {
		return domain.DailySpend{}, err
	}
	return out, nil
}

type field struct {
	name string
	raw  string
	dst  *decimal.Decimal
}

func parseDecimals(fields ...field) error {
	for _, f := range fields {
		v, err := decimal.NewFromString(f.raw)
		if err != nil {
			return fmt.Errorf("parse %s: %w", f.name, err)
		}
		*f.dst = v
	}
	return nil
}
