package configs

import (
	"time"

	"github.com/shopspring/decimal"
)

// Billing tunes the click billing engine. Ratios are parsed as decimals so
// that thresholds are compared without floating point error.
type Billing struct {
	// ReserveRatio is the hard daily stop as a multiple of the daily budget.
	ReserveRatio decimal.Decimal `env:"RESERVE_RATIO" envDefault:"1.2"`
	// WarningRatio raises a budget warning once projected spend passes it.
	WarningRatio decimal.Decimal `env:"WARNING_RATIO" envDefault:"0.8"`

	// DuplicateClickWindow rejects a second click from the same IP on the
	// same campaign within the window. Zero disables the check.
	DuplicateClickWindow time.Duration `env:"DUPLICATE_CLICK_WINDOW" envDefault:"5m"`
	// IdempotencyTTL is how long Idempotency-Key outcomes are kept.
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"24h"`
	// RollupSchedule is a cron spec, evaluated in UTC, for the daily
	// aggregate refresh and idempotency key purge.
	RollupSchedule string `env:"ROLLUP_SCHEDULE" envDefault:"5 0 * * *"`
	// AttributionTimeout bounds the post-commit click history write.
	AttributionTimeout time.Duration `env:"ATTRIBUTION_TIMEOUT" envDefault:"2s"`
}
