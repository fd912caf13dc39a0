package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var Module = fx.Module("metrics",
	fx.Provide(func() prometheus.Registerer { return prometheus.DefaultRegisterer }),
	fx.Provide(New),
)

// FeeMetrics counts fee evaluations by outcome and failed refreshes.
type FeeMetrics struct {
	evaluated     *prometheus.CounterVec
	refreshErrors prometheus.Counter
}

func New(reg prometheus.Registerer) (*FeeMetrics, error) {
	m := &FeeMetrics{
		evaluated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fees_evaluated_total",
			Help: "Fees evaluated against orders, by outcome.",
		}, []string{"outcome"}),
		refreshErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fee_refresh_errors_total",
			Help: "Order refreshes aborted by an error.",
		}),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{m.evaluated, m.refreshErrors} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func (m *FeeMetrics) ObserveOutcome(outcome string) {
	if m == nil {
		return
	}
	m.evaluated.WithLabelValues(outcome).Inc()
}

func (m *FeeMetrics) ObserveRefreshError() {
	if m == nil {
		return
	}
	m.refreshErrors.Inc()
}
