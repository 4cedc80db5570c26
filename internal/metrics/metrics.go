package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// Click outcome labels.
const (
	OutcomeCharged             = "charged"
	OutcomeReplayed            = "replayed"
	OutcomeNotFound            = "not_found"
	OutcomeInsufficientBalance = "insufficient_balance"
	OutcomeBudgetExceeded      = "budget_exceeded"
	OutcomeDuplicate           = "duplicate"
	OutcomeIdempotencyMismatch = "idempotency_mismatch"
	OutcomeTransient           = "transient"
	OutcomeError               = "error"
)

// ClickMetrics groups the billing engine collectors. A nil *ClickMetrics is
// valid and records nothing.
type ClickMetrics struct {
	ClicksTotal         *prometheus.CounterVec // by outcome
	ProcessDuration     prometheus.Histogram
	SpendTotal          prometheus.Counter
	AutoRechargeTotal   prometheus.Counter
	AttributionFailures prometheus.Counter
	RollupRuns          *prometheus.CounterVec // by result
}

// NewClickMetrics creates the collectors and registers them on reg.
func NewClickMetrics(reg prometheus.Registerer) *ClickMetrics {
	m := &ClickMetrics{
		ClicksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cpc_clicks_total",
				Help: "Processed clicks by outcome",
			},
			[]string{"outcome"},
		),
		ProcessDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "cpc_process_click_duration_seconds",
			Help:    "Duration of ProcessClick calls",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		SpendTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cpc_spend_total",
			Help: "Sum of charged click costs",
		}),
		AutoRechargeTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cpc_auto_recharge_total",
			Help: "Number of automatic balance top-ups",
		}),
		AttributionFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cpc_attribution_failures_total",
			Help: "Failed best-effort click history writes",
		}),
		RollupRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cpc_rollup_runs_total",
				Help: "Daily rollup executions by result",
			},
			[]string{"result"},
		),
	}
	reg.MustRegister(
		m.ClicksTotal,
		m.ProcessDuration,
		m.SpendTotal,
		m.AutoRechargeTotal,
		m.AttributionFailures,
		m.RollupRuns,
	)
	return m
}

func (m *ClickMetrics) ObserveClick(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.ClicksTotal.WithLabelValues(outcome).Inc()
	m.ProcessDuration.Observe(d.Seconds())
}

func (m *ClickMetrics) AddSpend(amount decimal.Decimal) {
	if m == nil {
		return
	}
	m.SpendTotal.Add(amount.InexactFloat64())
}

func (m *ClickMetrics) IncAutoRecharge() {
	if m == nil {
		return
	}
	m.AutoRechargeTotal.Inc()
}

func (m *ClickMetrics) IncAttributionFailure() {
	if m == nil {
		return
	}
	m.AttributionFailures.Inc()
}

func (m *ClickMetrics) IncRollup(result string) {
	if m == nil {
		return
	}
	m.RollupRuns.WithLabelValues(result).Inc()
}
