package scanner

import "github.com/prometheus/client_golang/prometheus"

// Metrics scan counters
type Metrics struct {
	scans       *prometheus.CounterVec
	positions   prometheus.Counter
	checkErrors prometheus.Counter
	priceErrors prometheus.Counter
	found       prometheus.Counter
}

// NewMetrics create and register the scan counters
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		scans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "liquidator",
			Name:      "scans_total",
			Help:      "Liquidation scans by outcome.",
		}, []string{"status"}),
		positions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "liquidator",
			Name:      "positions_checked_total",
			Help:      "Positions checked against the pool contract.",
		}),
		checkErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "liquidator",
			Name:      "health_check_failures_total",
			Help:      "Pool health checks that failed and were treated as healthy.",
		}),
		priceErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "liquidator",
			Name:      "oracle_failures_total",
			Help:      "Oracle price reads that failed and were reported as zero.",
		}),
		found: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "liquidator",
			Name:      "liquidatable_positions_total",
			Help:      "Liquidatable positions found.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.scans, m.positions, m.checkErrors, m.priceErrors, m.found)
	}

	return m
}
