package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// httpMetrics bundles the Prometheus collectors for HTTP traffic. Labels stay
// limited to method, registered route, and status code so cardinality stays
// bounded no matter what clients put in the URL.
type httpMetrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	inflight prometheus.Gauge
	respSize *prometheus.HistogramVec
}

var defaultHTTPMetrics = newHTTPMetrics(prometheus.DefaultRegisterer)

func newHTTPMetrics(reg prometheus.Registerer) *httpMetrics {
	factory := promauto.With(reg)
	return &httpMetrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		// Status is left off the histograms to keep their cardinality lower.
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		inflight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "http_requests_inflight",
			Help: "Current number of in-flight HTTP requests.",
		}),
		// Buckets tuned for JSON API payload sizes.
		respSize: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name: "http_response_size_bytes",
			Help: "Size of HTTP responses in bytes.",
			Buckets: []float64{
				200, 500, 1 << 10, 2 << 10, 5 << 10,
				10 << 10, 25 << 10, 50 << 10,
				100 << 10, 250 << 10, 500 << 10,
				1 << 20,
			},
		}, []string{"method", "path"}),
	}
}

func (m *httpMetrics) observe(c *gin.Context, elapsed time.Duration) {
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	method := c.Request.Method
	status := strconv.Itoa(c.Writer.Status())

	m.requests.WithLabelValues(method, route, status).Inc()
	m.latency.WithLabelValues(method, route).Observe(elapsed.Seconds())
	if size := c.Writer.Size(); size >= 0 {
		m.respSize.WithLabelValues(method, route).Observe(float64(size))
	}
}

// Metrics instruments requests with Prometheus counters and histograms. The
// "path" label uses the registered route (c.FullPath()) so raw URLs cannot
// blow up label cardinality; unmatched requests fall back to the raw path.
func Metrics() gin.HandlerFunc {
	m := defaultHTTPMetrics
	return func(c *gin.Context) {
		start := time.Now()
		m.inflight.Inc()
		defer m.inflight.Dec()

		c.Next()

		m.observe(c, time.Since(start))
	}
}
