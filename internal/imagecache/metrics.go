package imagecache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prefetch results used as metric labels.
const (
	ResultLoaded  = "loaded"
	ResultCached  = "cached"
	ResultFailed  = "failed"
	ResultNoImage = "no_image"
)

// Metrics holds the cache's Prometheus collectors.
type Metrics struct {
	resolves   *prometheus.CounterVec
	prefetches *prometheus.CounterVec
	inFlight   prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg. A nil reg
// leaves them unregistered, which is what tests and the TUI use.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		resolves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gallery",
			Subsystem: "imagecache",
			Name:      "resolve_total",
			Help:      "Image reference lookups by cache outcome.",
		}, []string{"result"}),
		prefetches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gallery",
			Subsystem: "imagecache",
			Name:      "prefetch_total",
			Help:      "Prefetch calls by outcome.",
		}, []string{"result"}),
		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "gallery",
			Subsystem: "imagecache",
			Name:      "loads_in_flight",
			Help:      "Image loads currently running.",
		}),
	}
}
