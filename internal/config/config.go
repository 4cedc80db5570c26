package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"cpc-billing/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Billing tunes budget pacing and click handling. Environment
	// variables prefixed with BILLING_ will populate this struct.
	Billing configs.Billing `envPrefix:"BILLING_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing or validation fails, an error is returned. All fields are loaded
// with their specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings the billing engine cannot run with.
func (c Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	b := c.Billing
	if !b.ReserveRatio.IsPositive() || !b.WarningRatio.IsPositive() {
		return errors.New("billing ratios must be positive")
	}
	if !b.WarningRatio.LessThan(b.ReserveRatio) {
		return fmt.Errorf("warning ratio %s must be below reserve ratio %s", b.WarningRatio, b.ReserveRatio)
	}
	if b.DuplicateClickWindow < 0 || b.IdempotencyTTL < 0 {
		return errors.New("billing durations must not be negative")
	}
	if c.Psql.MinConns > c.Psql.MaxConns && c.Psql.MaxConns > 0 {
		return fmt.Errorf("min conns %d exceeds max conns %d", c.Psql.MinConns, c.Psql.MaxConns)
	}
	return nil
}
