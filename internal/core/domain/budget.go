package domain

import "github.com/shopspring/decimal"

// WarningLevel grades how close a campaign is to its daily budget.
type WarningLevel string

const (
	WarningLevelWarning  WarningLevel = "warning"
	WarningLevelCritical WarningLevel = "critical"
)

// BudgetWarning is informational metadata attached to a successful charge.
// Percentage is the projected spend relative to the nominal daily budget.
type BudgetWarning struct {
	Level      WarningLevel    `json:"level"`
	Spent      decimal.Decimal `json:"spent"`
	Budget     decimal.Decimal `json:"budget"`
	Percentage decimal.Decimal `json:"percentage"`
}

// Verdict is the affordability decision for a single click.
type Verdict int

const (
	VerdictAllow Verdict = iota
	VerdictInsufficientBalance
	VerdictBudgetExceeded
)

func (v Verdict) String() string {
	switch v {
	case VerdictAllow:
		return "allow"
	case VerdictInsufficientBalance:
		return "insufficient_balance"
	case VerdictBudgetExceeded:
		return "budget_exceeded"
	default:
		return "unknown"
	}
}

// Assessment is the result of BudgetPolicy.Assess.
type Assessment struct {
	Verdict        Verdict
	TodaySpent     decimal.Decimal
	Projected      decimal.Decimal
	DailyBudget    decimal.Decimal
	ReserveCeiling decimal.Decimal
	Warning        *BudgetWarning
}

var hundred = decimal.NewFromInt(100)

// BudgetPolicy holds the pacing ratios applied to every campaign. A campaign
// may overshoot its nominal daily budget up to DailyBudget*ReserveRatio;
// projected spend above DailyBudget*WarningRatio raises a warning.
type BudgetPolicy struct {
	ReserveRatio decimal.Decimal
	WarningRatio decimal.Decimal
}

// DefaultBudgetPolicy allows a 20% reserve and warns at 80% of the budget.
func DefaultBudgetPolicy() BudgetPolicy {
	return BudgetPolicy{
		ReserveRatio: decimal.RequireFromString("1.2"),
		WarningRatio: decimal.RequireFromString("0.8"),
	}
}

// ReserveCeiling returns the hard daily stop for dailyBudget.
func (p BudgetPolicy) ReserveCeiling(dailyBudget decimal.Decimal) decimal.Decimal {
	return dailyBudget.Mul(p.ReserveRatio)
}

// Assess decides whether a charge of bid may proceed given the advertiser
// balance and the campaign's ledger spend for the current UTC day. The
// balance is checked before the budget.
func (p BudgetPolicy) Assess(balance, bid decimal.Decimal, today DailySpend, dailyBudget decimal.Decimal) Assessment {
	projected := today.Amount.Add(bid)
	a := Assessment{
		Verdict:        VerdictAllow,
		TodaySpent:     today.Amount,
		Projected:      projected,
		DailyBudget:    dailyBudget,
		ReserveCeiling: p.ReserveCeiling(dailyBudget),
	}
	if balance.LessThan(bid) {
		a.Verdict = VerdictInsufficientBalance
		return a
	}
	if projected.GreaterThan(a.ReserveCeiling) {
		a.Verdict = VerdictBudgetExceeded
		return a
	}
	a.Warning = p.warning(projected, dailyBudget)
	return a
}

func (p BudgetPolicy) warning(projected, dailyBudget decimal.Decimal) *BudgetWarning {
	var level WarningLevel
	switch {
	case projected.GreaterThan(dailyBudget):
		level = WarningLevelCritical
	case projected.GreaterThan(dailyBudget.Mul(p.WarningRatio)):
		level = WarningLevelWarning
	default:
		return nil
	}
	pct := decimal.Zero
	if dailyBudget.IsPositive() {
		pct = projected.Div(dailyBudget).Mul(hundred).Round(2)
	}
	return &BudgetWarning{
		Level:      level,
		Spent:      projected,
		Budget:     dailyBudget,
		Percentage: pct,
	}
}
