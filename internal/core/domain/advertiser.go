package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Advertiser is a paying company. Balance is authoritative and is only
// mutated inside a billing transaction.
type Advertiser struct {
	ID                    uuid.UUID
	Name                  string
	Balance               decimal.Decimal
	TotalSpent            decimal.Decimal
	AutoRechargeEnabled   bool
	AutoRechargeThreshold decimal.Decimal
	AutoRechargeAmount    decimal.Decimal
	IsActive              bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// CanAfford reports whether the balance covers amount.
func (a *Advertiser) CanAfford(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}

// NeedsAutoRecharge reports whether a balance left after a debit should
// trigger an automatic top-up.
func (a *Advertiser) NeedsAutoRecharge(balance decimal.Decimal) bool {
	return a.AutoRechargeEnabled &&
		a.AutoRechargeAmount.IsPositive() &&
		balance.LessThan(a.AutoRechargeThreshold)
}
