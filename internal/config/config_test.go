package config

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.EqualValues(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.Psql.RunMigrations)
	assert.Equal(t, 5*time.Second, cfg.Psql.TxTimeout)
	assert.True(t, decimal.RequireFromString("1.2").Equal(cfg.Billing.ReserveRatio))
	assert.True(t, decimal.RequireFromString("0.8").Equal(cfg.Billing.WarningRatio))
	assert.Equal(t, 5*time.Minute, cfg.Billing.DuplicateClickWindow)
	assert.Equal(t, 24*time.Hour, cfg.Billing.IdempotencyTTL)
	assert.Equal(t, "5 0 * * *", cfg.Billing.RollupSchedule)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("PSQL_ADDRESS", "postgres://billing:secret@db:5432/billing?sslmode=disable")
	t.Setenv("PSQL_MAX_CONNS", "20")
	t.Setenv("BILLING_RESERVE_RATIO", "1.5")
	t.Setenv("BILLING_WARNING_RATIO", "0.9")
	t.Setenv("BILLING_DUPLICATE_CLICK_WINDOW", "0s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.EqualValues(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "db:5432", cfg.Psql.Addr.Host)
	assert.EqualValues(t, 20, cfg.Psql.MaxConns)
	assert.True(t, decimal.RequireFromString("1.5").Equal(cfg.Billing.ReserveRatio))
	assert.Zero(t, cfg.Billing.DuplicateClickWindow)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "warning above reserve", env: map[string]string{"BILLING_WARNING_RATIO": "1.3"}},
		{name: "zero reserve", env: map[string]string{"BILLING_RESERVE_RATIO": "0"}},
		{name: "malformed ratio", env: map[string]string{"BILLING_RESERVE_RATIO": "lots"}},
		{name: "negative window", env: map[string]string{"BILLING_DUPLICATE_CLICK_WINDOW": "-1m"}},
		{name: "unknown log level", env: map[string]string{"LOG_LEVEL": "verbose"}},
		{name: "unknown log format", env: map[string]string{"LOG_FORMAT": "xml"}},
		{name: "pool bounds", env: map[string]string{"PSQL_MAX_CONNS": "2", "PSQL_MIN_CONNS": "5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLogger_NewHandler(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, cfg.Log.Level)

	var buf bytes.Buffer
	logger := slog.New(cfg.Log.NewHandler(&buf))
	logger.Info("click charged")
	assert.Empty(t, buf.String())

	logger.Warn("click rejected", slog.String("product_id", "prod-1"))
	assert.Contains(t, buf.String(), `"msg":"click rejected"`)
	assert.Contains(t, buf.String(), `"product_id":"prod-1"`)
}
