// Package metrics exposes Prometheus instrumentation for credential
// resolution. Registration is opt-in: a host process (or the CLI with
// metrics enabled) calls Init once; without it every record call is a no-op,
// so library consumers and tests do not pollute the default registry.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	resolutionsTotal      *prometheus.CounterVec
	refreshTotal          prometheus.Counter
	capabilityDeniedTotal *prometheus.CounterVec
	resolutionDuration    *prometheus.HistogramVec

	metricsOnce       sync.Once
	metricsRegistered bool
)

// Init registers all metrics with the default registry. Safe to call more
// than once.
func Init() {
	metricsOnce.Do(func() {
		resolutionsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "azwarden_session_resolutions_total",
				Help: "Total number of credential resolution attempts",
			},
			[]string{"mode", "status"},
		)

		refreshTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "azwarden_session_refresh_total",
				Help: "Total number of forced session refreshes",
			},
		)

		capabilityDeniedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "azwarden_capability_denied_total",
				Help: "Total number of capability checks rejected by mode",
			},
			[]string{"capability"},
		)

		resolutionDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "azwarden_session_resolution_duration_seconds",
				Help:    "Duration of credential resolution in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15},
			},
			[]string{"mode"},
		)

		metricsRegistered = true
	})
}

// RecordResolution records one resolution attempt and its duration.
func RecordResolution(mode, status string, d time.Duration) {
	if !metricsRegistered {
		return
	}
	resolutionsTotal.WithLabelValues(mode, status).Inc()
	resolutionDuration.WithLabelValues(mode).Observe(d.Seconds())
}

// RecordRefresh records a forced refresh.
func RecordRefresh() {
	if !metricsRegistered {
		return
	}
	refreshTotal.Inc()
}

// RecordCapabilityDenied records a rejected capability check.
func RecordCapabilityDenied(capability string) {
	if !metricsRegistered {
		return
	}
	capabilityDeniedTotal.WithLabelValues(capability).Inc()
}
