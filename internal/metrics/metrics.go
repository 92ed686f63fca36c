package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	AnalyticsComputations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "repayment_analytics_computations_total",
			Help: "Number of full repayment analytics recomputations",
		},
	)

	AnalyticsCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "repayment_analytics_cache_hits_total",
			Help: "Number of analytics responses served from Redis",
		},
	)
)
