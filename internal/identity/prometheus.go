package identity

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	statusGauge     *prometheus.GaugeVec //nolint:gochecknoglobals
	statusGaugeOnce sync.Once            //nolint:gochecknoglobals
)

// providerStatus publishes s as the one active series of identity_provider_status.
func providerStatus(s Status) {
	statusGaugeOnce.Do(func() {
		statusGauge = promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "identity_provider_status",
				Help: "Resolution state of the identity provider, 1 for the current state.",
			},
			[]string{"status"},
		)
	})

	for _, st := range []Status{StatusUnresolved, StatusActive, StatusUnavailable} {
		v := 0.0
		if st == s {
			v = 1
		}

		statusGauge.WithLabelValues(st.String()).Set(v)
	}
}
