// Package metrics expone contadores e histogramas del registrador de movimientos en formato Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/banco-alimentos/internal/application/inventory"
)

var _ inventory.MovementMetrics = (*Recorder)(nil)

// Recorder implementa inventory.MovementMetrics sobre un registry propio.
type Recorder struct {
	registry *prometheus.Registry
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewRecorder crea el registry con las métricas del proceso, de Go y del registrador.
func NewRecorder(namespace string) *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stock_movements_total",
			Help:      "Operaciones de stock por tipo y resultado.",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stock_movement_duration_seconds",
			Help:      "Duración de las operaciones de stock.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.total,
		r.duration,
	)
	return r
}

// ObserveMovement cuenta el resultado (success, invalid_fields, insufficient_stock, ...) y su duración.
func (r *Recorder) ObserveMovement(operation, outcome string, elapsed time.Duration) {
	r.total.WithLabelValues(operation, outcome).Inc()
	r.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// Handler sirve /metrics para este registry.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Registry expone el registry (tests y colectores adicionales).
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }
