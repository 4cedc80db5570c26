package configs

import (
	"fmt"
	"io"
	"log/slog"
)

// Logger configures the service log. Level accepts the slog level names
// ("debug", "info", "warn", "error") with optional offsets such as
// "info+2"; Format is "text" or "json".
type Logger struct {
	Level  slog.Level `env:"LEVEL" envDefault:"info"`
	Format string     `env:"FORMAT" envDefault:"text"`
}

// Validate rejects unsupported formats.
func (c Logger) Validate() error {
	switch c.Format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("unsupported log format %q", c.Format)
	}
}

// NewHandler returns the slog handler writing billing logs to w.
func (c Logger) NewHandler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: c.Level}
	if c.Format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
