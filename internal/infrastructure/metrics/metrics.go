package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/iho/txengine/internal/domain"
)

// Metrics holds all Prometheus metrics of a replay run.
// It implements usecase.Recorder.
type Metrics struct {
	registry *prometheus.Registry

	// Transaction metrics
	TransactionsApplied  *prometheus.CounterVec
	TransactionsRejected *prometheus.CounterVec

	// Account metrics
	Accounts       prometheus.Gauge
	AccountsLocked prometheus.Gauge
	HeldFunds      prometheus.Gauge

	// Run metrics
	ReplayDuration prometheus.Histogram
}

// New creates all metrics on a dedicated registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		TransactionsApplied: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txengine_transactions_applied_total",
				Help: "Total number of transactions applied by kind",
			},
			[]string{"kind"},
		),
		TransactionsRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txengine_transactions_rejected_total",
				Help: "Total number of rejected transactions by kind and reason",
			},
			[]string{"kind", "reason"},
		),

		Accounts: factory.NewGauge(prometheus.GaugeOpts{
			Name: "txengine_accounts",
			Help: "Number of accounts at the end of the run",
		}),
		AccountsLocked: factory.NewGauge(prometheus.GaugeOpts{
			Name: "txengine_accounts_locked",
			Help: "Number of locked accounts at the end of the run",
		}),
		HeldFunds: factory.NewGauge(prometheus.GaugeOpts{
			Name: "txengine_held_funds",
			Help: "Sum of held funds across all accounts",
		}),

		ReplayDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "txengine_replay_duration_seconds",
			Help:    "Duration of replay runs",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// TransactionApplied counts an applied transaction.
func (m *Metrics) TransactionApplied(kind domain.Kind) {
	m.TransactionsApplied.WithLabelValues(string(kind)).Inc()
}

// TransactionRejected counts a rejected transaction by reason.
func (m *Metrics) TransactionRejected(kind domain.Kind, reason string) {
	m.TransactionsRejected.WithLabelValues(string(kind), reason).Inc()
}

// ReplayFinished records end-of-run account gauges and the run duration.
func (m *Metrics) ReplayFinished(accounts []domain.Account, elapsed time.Duration) {
	locked := 0
	held := domain.ZeroMoney
	for _, acc := range accounts {
		if acc.Locked {
			locked++
		}
		held = held.Add(acc.Held)
	}

	m.Accounts.Set(float64(len(accounts)))
	m.AccountsLocked.Set(float64(locked))
	m.HeldFunds.Set(held.Decimal().InexactFloat64())
	m.ReplayDuration.Observe(elapsed.Seconds())
}

// WriteText writes all gathered metrics in the Prometheus text format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
