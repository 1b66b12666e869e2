// Package metrics exposes conversion activity as Prometheus metrics.
//
// The Observer implements both registry.Observer and prometheus.Collector:
// hook it into a unit registry with SetObserver and register it with a
// Prometheus registerer. Without it the engine stays side-effect free.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360studio/unitconv/registry"
)

// Observer counts conversions by dimension and failures by error kind.
type Observer struct {
	conversions *prometheus.CounterVec
	failures    *prometheus.CounterVec
}

// NewObserver creates an unregistered observer. Counter vectors are safe
// for concurrent use, matching the engine's concurrency model.
func NewObserver() *Observer {
	return &Observer{
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "unitconv",
			Name:      "conversions_total",
			Help:      "Successful unit conversions by dimension.",
		}, []string{"dimension"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "unitconv",
			Name:      "conversion_failures_total",
			Help:      "Failed unit conversions by error kind.",
		}, []string{"kind"}),
	}
}

// ObserveConversion implements registry.Observer.
func (o *Observer) ObserveConversion(dim registry.Dimension, from, to string) {
	o.conversions.WithLabelValues(string(dim)).Inc()
}

// ObserveFailure implements registry.Observer.
func (o *Observer) ObserveFailure(kind string) {
	o.failures.WithLabelValues(kind).Inc()
}

// Describe implements prometheus.Collector.
func (o *Observer) Describe(ch chan<- *prometheus.Desc) {
	o.conversions.Describe(ch)
	o.failures.Describe(ch)
}

// Collect implements prometheus.Collector.
func (o *Observer) Collect(ch chan<- prometheus.Metric) {
	o.conversions.Collect(ch)
	o.failures.Collect(ch)
}
