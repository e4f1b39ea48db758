package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the catalog module. Writes and
// validation rejections are counted per entity; operation durations cover
// the service layer including store round trips.
type Metrics struct {
	Writes               *prometheus.CounterVec
	ValidationRejections *prometheus.CounterVec
	OperationDuration    *prometheus.HistogramVec
	CacheHits            prometheus.Counter
	CacheMisses          prometheus.Counter
}

// New creates a Metrics instance with all catalog metrics registered.
func New() *Metrics {
	return &Metrics{
		Writes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "voterguide_writes_total",
			Help: "Total accepted catalog writes by entity and operation",
		}, []string{"entity", "operation"}),
		ValidationRejections: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "voterguide_validation_rejections_total",
			Help: "Total writes rejected by the validation engine",
		}, []string{"entity"}),
		OperationDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "voterguide_operation_duration_seconds",
			Help:    "Duration of catalog service operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"entity", "operation"}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "voterguide_cache_hits_total",
			Help: "Total catalog cache hits",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "voterguide_cache_misses_total",
			Help: "Total catalog cache misses",
		}),
	}
}

// IncrementWrite records an accepted write.
func (m *Metrics) IncrementWrite(entity, operation string) {
	if m == nil {
		return
	}
	m.Writes.WithLabelValues(entity, operation).Inc()
}

// IncrementValidationRejection records a write the validation engine
// rejected.
func (m *Metrics) IncrementValidationRejection(entity string) {
	if m == nil {
		return
	}
	m.ValidationRejections.WithLabelValues(entity).Inc()
}

// ObserveOperation records an operation duration. Call with time.Now() from
// the start of the operation.
func (m *Metrics) ObserveOperation(entity, operation string, start time.Time) {
	if m == nil {
		return
	}
	m.OperationDuration.WithLabelValues(entity, operation).Observe(time.Since(start).Seconds())
}

// IncrementCacheHit records a catalog cache hit.
func (m *Metrics) IncrementCacheHit() {
	if m == nil {
		return
	}
	m.CacheHits.Inc()
}

// IncrementCacheMiss records a catalog cache miss.
func (m *Metrics) IncrementCacheMiss() {
	if m == nil {
		return
	}
	m.CacheMisses.Inc()
}
