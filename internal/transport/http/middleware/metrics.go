package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	reqTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "starhaven",
			Name:      "http_requests_total",
			Help:      "Requests served, by route, method and status.",
		}, []string{"route", "method", "status"},
	)
	reqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "starhaven",
			Name:      "http_request_duration_seconds",
			Help:      "Request latency, by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"},
	)
	reqInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "starhaven",
			Name:      "http_requests_in_flight",
			Help:      "Requests currently being served.",
		},
	)
)

func init() { prometheus.MustRegister(reqTotal, reqDuration, reqInFlight) }

// Metrics records per-route counters and latency. Unmatched paths keep
// the raw URL path as the label so 404 noise stays visible.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqInFlight.Inc()
		c.Next()
		reqInFlight.Dec()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		reqTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		reqDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
