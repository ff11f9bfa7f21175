package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Page render outcomes.
const (
	OutcomeLoading = "loading"
	OutcomeError   = "error"
	OutcomeSuccess = "success"
)

// Metrics records user page activity.
type Metrics struct {
	PageRenders   *prometheus.CounterVec
	QueryDuration prometheus.Histogram
	WalletChanges *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		PageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tinyhouse_user_page_renders_total",
			Help: "User page renders by outcome (loading, error, success)",
		}, []string{"outcome"}),
		QueryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tinyhouse_user_query_duration_seconds",
			Help:    "Duration of the user page data query",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
		WalletChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tinyhouse_wallet_changes_total",
			Help: "Wallet connect and disconnect attempts by action and result",
		}, []string{"action", "result"}),
	}
	if reg != nil {
		reg.MustRegister(m.PageRenders, m.QueryDuration, m.WalletChanges)
	}
	return m
}

// ObservePage counts one rendered page state.
func (m *Metrics) ObservePage(outcome string) {
	if m == nil {
		return
	}
	m.PageRenders.WithLabelValues(outcome).Inc()
}

// ObserveQuery records how long the user query took.
func (m *Metrics) ObserveQuery(start time.Time) {
	if m == nil {
		return
	}
	m.QueryDuration.Observe(time.Since(start).Seconds())
}

// ObserveWallet counts a wallet action. ok=false records a failure.
func (m *Metrics) ObserveWallet(action string, ok bool) {
	if m == nil {
		return
	}
	result := "success"
	if !ok {
		result = "failure"
	}
	m.WalletChanges.WithLabelValues(action, result).Inc()
}
