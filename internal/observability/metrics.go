package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes Prometheus collectors for the interpretation pipeline.
type Metrics struct {
	requests *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// MustNewMetrics registers the collectors on reg. Collectors already registered
// under the same name are reused so several reporters can share one registry.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "friday",
			Subsystem: "interpreter",
			Name:      "requests_total",
			Help:      "Interpretations served, by source of the record.",
		},
		[]string{"source"},
	)
	failures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "friday",
			Subsystem: "parser",
			Name:      "failures_total",
			Help:      "External parser failures absorbed, by stage.",
		},
		[]string{"stage"},
	)

	requests = register(reg, requests)
	failures = register(reg, failures)

	return &Metrics{requests: requests, failures: failures}
}

func register(reg prometheus.Registerer, c *prometheus.CounterVec) *prometheus.CounterVec {
	if err := reg.Register(c); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return already.ExistingCollector.(*prometheus.CounterVec)
		}
		panic(err)
	}
	return c
}

// IncRequest counts one interpretation served from source.
func (m *Metrics) IncRequest(source string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(source).Inc()
}

// IncFailure counts one parser failure at stage.
func (m *Metrics) IncFailure(stage Stage) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(string(stage)).Inc()
}
