// Package metrics provides prometheus-backed observability for pool
// traffic. A Collector implements the pool.Observer interface, so it can
// be attached to a registry with pool.WithObserver.
//
// Basic usage:
//
//	collector := metrics.NewCollector("reuse", prometheus.DefaultRegisterer)
//	reg := pool.NewRegistry(pool.WithObserver(collector))
//
// Exposed series, all labeled by pool key:
//
//	<ns>_pool_gets_total{pool,source}  - gets, split by hit/miss
//	<ns>_pool_puts_total{pool}         - puts
//	<ns>_pools_registered              - number of registered pools
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector records pool traffic as prometheus metrics.
type Collector struct {
	gets       *prometheus.CounterVec
	puts       *prometheus.CounterVec
	registered prometheus.Gauge
}

// NewCollector creates a collector registered with reg under the given
// metric namespace. Pass a fresh prometheus.NewRegistry() in tests to
// keep registrations isolated.
func NewCollector(namespace string, reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		gets: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pool_gets_total",
			Help:      "Objects handed out by pools, by source (hit=recycled, miss=created).",
		}, []string{"pool", "source"}),
		puts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pool_puts_total",
			Help:      "Objects returned to pools.",
		}, []string{"pool"}),
		registered: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pools_registered",
			Help:      "Number of pools registered in the registry.",
		}),
	}
}

// PoolRegistered records a new pool registration.
func (c *Collector) PoolRegistered(string) {
	c.registered.Inc()
}

// ObserveGet records a Get, split by whether the instance was recycled.
func (c *Collector) ObserveGet(key string, reused bool) {
	source := "miss"
	if reused {
		source = "hit"
	}
	c.gets.WithLabelValues(key, source).Inc()
}

// ObservePut records a Put.
func (c *Collector) ObservePut(key string) {
	c.puts.WithLabelValues(key).Inc()
}
