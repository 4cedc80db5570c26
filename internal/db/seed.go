package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// Execer is satisfied by *pgxpool.Pool and pgx.Tx.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const (
	seedAdvertiserSQL = `INSERT INTO advertisers (id, name, balance, auto_recharge_enabled, auto_recharge_threshold, auto_recharge_amount, is_active) VALUES ($1, $2, $3, $4, $5, $6, TRUE) ON CONFLICT DO NOTHING`
	seedCampaignSQL   = `INSERT INTO campaigns (id, advertiser_id, product_id, name, status, is_approved, bid_amount, daily_budget, created_at) VALUES ($1, $2, $3, $4, 'active', TRUE, $5, $6, now() - make_interval(mins => $7)) ON CONFLICT DO NOTHING`
)

// Demo ids are derived from fixed names so that repeated seeding is a no-op.
var seedNamespace = uuid.MustParse("7d9f4b8e-3a51-4c2e-9f06-2b1d8c5e7a40")

type seedAdvertiser struct {
	name              string
	balance           string
	autoRecharge      bool
	rechargeThreshold string
	recharge          string
	campaigns         []seedCampaign
}

type seedCampaign struct {
	name, product, bid, budget string
}

var demoAdvertisers = []seedAdvertiser{
	{
		name: "Northwind Outfitters", balance: "500.00",
		autoRecharge: true, rechargeThreshold: "50.00", recharge: "200.00",
		campaigns: []seedCampaign{
			{name: "Trail shoes", product: "sku-trail-01", bid: "0.45", budget: "40.00"},
			{name: "Rain jackets", product: "sku-rain-07", bid: "0.60", budget: "25.00"},
		},
	},
	{
		name: "Contoso Kitchen", balance: "12.00",
		rechargeThreshold: "0", recharge: "0",
		campaigns: []seedCampaign{
			{name: "Cast iron", product: "sku-pan-22", bid: "1.00", budget: "10.00"},
		},
	},
	{
		name: "Fabrikam Audio", balance: "3.00",
		rechargeThreshold: "0", recharge: "0",
		campaigns: []seedCampaign{
			{name: "Headphones", product: "sku-trail-01", bid: "5.00", budget: "100.00"},
		},
	},
}

// Seed inserts demo advertisers and campaigns. Campaigns are created with
// staggered timestamps so the oldest-first selection is visible when two
// campaigns promote the same product.
func Seed(ctx context.Context, db Execer) error {
	age := len(demoAdvertisers) * 10
	for _, a := range demoAdvertisers {
		advID := uuid.NewSHA1(seedNamespace, []byte(a.name))
		_, err := db.Exec(ctx, seedAdvertiserSQL,
			advID, a.name, a.balance, a.autoRecharge, a.rechargeThreshold, a.recharge)
		if err != nil {
			return fmt.Errorf("seed advertiser %q: %w", a.name, err)
		}
		for _, c := range a.campaigns {
			campID := uuid.NewSHA1(seedNamespace, []byte(a.name+"/"+c.name))
			_, err = db.Exec(ctx, seedCampaignSQL,
				campID, advID, c.product, c.name, c.bid, c.budget, age)
			if err != nil {
				return fmt.Errorf("seed campaign %q: %w", c.name, err)
			}
			age--
		}
	}
	return nil
}
