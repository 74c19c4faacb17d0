package gate

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decisions     *prometheus.CounterVec //nolint:gochecknoglobals
	decisionsOnce sync.Once              //nolint:gochecknoglobals
)

func countDecision(d Decision) {
	decisionsOnce.Do(func() {
		decisions = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "session_gate_decisions_total",
				Help: "Number of intercepted requests, differentiated by gate decision.",
			},
			[]string{"decision"},
		)
	})

	decisions.WithLabelValues(d.String()).Inc()
}
