package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dispatch_http_request_duration_seconds",
		Help:    "Duration of HTTP requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_http_requests_total",
		Help: "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)
