// Package metrics exposes route resolution and HTTP metrics to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tide"

// Collector implements ports.Metrics on a private Prometheus registry.
type Collector struct {
	registry *prometheus.Registry

	cacheLookups    *prometheus.CounterVec
	cacheConflicts  prometheus.Counter
	resolveDuration *prometheus.HistogramVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// New creates a Collector with its own registry, including Go runtime collectors.
func New() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		cacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "route_cache_lookups_total",
				Help:      "Route cache lookups by result.",
			},
			[]string{"result"},
		),
		cacheConflicts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "route_cache_conflicts_total",
			Help:      "Route inserts that lost to a concurrent writer.",
		}),
		resolveDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "route_compute_duration_seconds",
				Help:      "Time spent building the graph and solving an uncached route.",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"found"},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests processed.",
			},
			[]string{"method", "path", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}

// CacheHit counts a resolution served from the route cache.
func (c *Collector) CacheHit() {
	c.cacheLookups.WithLabelValues("hit").Inc()
}

// CacheMiss counts a resolution that had to be computed.
func (c *Collector) CacheMiss() {
	c.cacheLookups.WithLabelValues("miss").Inc()
}

// CacheConflict counts a lost insert race.
func (c *Collector) CacheConflict() {
	c.cacheConflicts.Inc()
}

// ObserveResolve records the duration of a computed resolution.
func (c *Collector) ObserveResolve(d time.Duration, found bool) {
	c.resolveDuration.WithLabelValues(strconv.FormatBool(found)).Observe(d.Seconds())
}

// ObserveRequest records one HTTP request.
func (c *Collector) ObserveRequest(method, path string, status int, d time.Duration) {
	c.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// Registry returns the registry backing the collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
