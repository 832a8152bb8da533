package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector gathers HTTP-level Prometheus metrics for the service.
type Collector struct {
	registry    *prometheus.Registry
	requests    *prometheus.CounterVec
	latency     prometheus.Histogram
	searchTotal prometheus.Counter
	fetchTotal  *prometheus.CounterVec
}

// NewCollector creates a Collector with its own registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "urlmanage_http_requests_total",
			Help: "HTTP requests by method and status code.",
		}, []string{"method", "status_code"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "urlmanage_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		searchTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "urlmanage_search_total",
			Help: "Search requests served.",
		}),
		fetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "urlmanage_metadata_fetch_total",
			Help: "Website metadata fetches by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(c.requests, c.latency, c.searchTotal, c.fetchTotal)
	return c
}

// RecordSearch counts one search request.
func (c *Collector) RecordSearch() {
	c.searchTotal.Inc()
}

// RecordMetadataFetch counts one metadata fetch with the given outcome
// ("ok" or "error").
func (c *Collector) RecordMetadataFetch(outcome string) {
	c.fetchTotal.WithLabelValues(outcome).Inc()
}

// Middleware returns a gin middleware that records request count and latency.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		c.requests.WithLabelValues(ctx.Request.Method, strconv.Itoa(ctx.Writer.Status())).Inc()
		c.latency.Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the registry for a GET /metrics route.
func (c *Collector) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}
