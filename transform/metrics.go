package transform

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records registry cache behaviour. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	// Constructions by kind and result ("hit" or "miss")
	Constructions *prometheus.CounterVec

	// Cached instances by kind
	CachedInstances *prometheus.GaugeVec
}

// NewMetrics creates Metrics registered on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Constructions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "paramz_transform_constructions_total",
			Help: "Transformation construction requests by kind and cache result",
		}, []string{"kind", "result"}),

		CachedInstances: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "paramz_transform_cached_instances",
			Help: "Transformation instances currently cached by kind",
		}, []string{"kind"}),
	}
}

// ObserveConstruction records a cache hit or miss for kind.
func (m *Metrics) ObserveConstruction(kind Kind, hit bool) {
	if m != nil {
		result := "miss"
		if hit {
			result = "hit"
		}
		m.Constructions.WithLabelValues(kind.String(), result).Inc()
	}
}

// SetCachedInstances records the number of cached instances of kind.
func (m *Metrics) SetCachedInstances(kind Kind, n int) {
	if m != nil {
		m.CachedInstances.WithLabelValues(kind.String()).Set(float64(n))
	}
}
