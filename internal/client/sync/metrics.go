package sync

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics счетчики синхронизации в формате Prometheus
type Metrics struct {
	operations *prometheus.CounterVec
	keys       *prometheus.CounterVec
	retries    *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	queueDepth prometheus.Gauge
	dropped    prometheus.Counter
}

// NewMetrics регистрирует метрики в reg.
// nil reg создает метрики без регистрации.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lingosync_sync_operations_total",
			Help: "Sync operations by kind and outcome",
		}, []string{"operation", "outcome"}),
		keys: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lingosync_sync_keys_total",
			Help: "Progress keys processed during download by action",
		}, []string{"action"}),
		retries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lingosync_sync_retries_total",
			Help: "Remote call retry attempts",
		}, []string{"operation"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lingosync_sync_duration_seconds",
			Help:    "Time spent in sync operations including retries",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
		}, []string{"operation"}),
		queueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Name: "lingosync_sync_queue_depth",
			Help: "Upload jobs waiting in the queue",
		}),
		dropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "lingosync_sync_jobs_dropped_total",
			Help: "Upload jobs dropped because the queue was full or the worker stopped",
		}),
	}
}

func (m *Metrics) observe(res *Result) {
	m.operations.WithLabelValues(string(res.Operation), string(res.Outcome)).Inc()
	m.duration.WithLabelValues(string(res.Operation)).Observe(res.Duration.Seconds())
	if res.Adopted > 0 {
		m.keys.WithLabelValues("adopted").Add(float64(res.Adopted))
	}
	if res.Merged > 0 {
		m.keys.WithLabelValues("merged").Add(float64(res.Merged))
	}
	if res.Skipped > 0 {
		m.keys.WithLabelValues("skipped").Add(float64(res.Skipped))
	}
}
