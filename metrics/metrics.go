package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ExchangeMetrics groups the service counters.
type ExchangeMetrics struct {
	// Cache effectiveness
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter

	// Outbound provider calls, labeled by provider name and outcome
	ProviderRequests *prometheus.CounterVec

	// Degraded-mode responses served from the static table
	StaticFallbacks prometheus.Counter

	// Completed conversions by currency pair
	Conversions *prometheus.CounterVec
}

// New registers the counters with the given registerer. Tests pass
// a fresh registry to avoid duplicate registration.
func New(reg prometheus.Registerer) *ExchangeMetrics {
	factory := promauto.With(reg)

	return &ExchangeMetrics{
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "exchange_cache_hits_total",
			Help: "Rate lookups served from the cache",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "exchange_cache_misses_total",
			Help: "Rate lookups that missed the cache",
		}),
		ProviderRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "exchange_provider_requests_total",
			Help: "Outbound provider fetches by outcome",
		}, []string{"provider", "outcome"}),
		StaticFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "exchange_static_fallbacks_total",
			Help: "Rate sets served from the static fallback table",
		}),
		Conversions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "exchange_conversions_total",
			Help: "Completed conversions by currency pair",
		}, []string{"from", "to"}),
	}
}
