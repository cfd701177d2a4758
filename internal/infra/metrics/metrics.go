// Package metrics exposes prometheus counters for ledger operations.
package metrics

import (
	"net/http"

	"shop/config"
	"shop/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// Metrics owns a private registry so tests and multiple apps never collide on
// the global one.
type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shop",
		Name:      "ledger_operations_total",
		Help:      "Ledger operations by outcome. Outcome is ok or the error code.",
	}, []string{"operation", "outcome"})
	registry.MustRegister(operations)

	return &Metrics{registry: registry, operations: operations}
}

// ObserveOperation increments shop_ledger_operations_total.
func (m *Metrics) ObserveOperation(operation, outcome string) {
	m.operations.WithLabelValues(operation, outcome).Inc()
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// NewRecorder hands the prometheus recorder to usecases only when metrics are enabled.
func NewRecorder(cfg *config.Config, m *Metrics) service.MetricsRecorder {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return service.NoopMetrics
	}

	return m
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New, NewRecorder),
)
