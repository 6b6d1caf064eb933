// Package metrics exposes prometheus counters for the site.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "linkbio",
		Name:      "admin_login_attempts_total",
		Help:      "Admin login attempts by result.",
	}, []string{"result"})

	SiteUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "linkbio",
		Name:      "site_updates_total",
		Help:      "Admin writes by operation and result.",
	}, []string{"operation", "result"})

	Uploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "linkbio",
		Name:      "uploads_total",
		Help:      "File uploads by result.",
	}, []string{"result"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "linkbio",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// Result maps an error to a label value.
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// Middleware records request latency per matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// Handler serves the default registry.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
