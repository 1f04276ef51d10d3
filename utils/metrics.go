package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MetricRequestCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fyyur_http_requests_total",
			Help: "Number of HTTP requests handled, by route and status code",
		},
		[]string{"method", "route", "status"},
	)
	MetricRequestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fyyur_http_request_duration_seconds",
			Help:    "Latency of HTTP requests, by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	MetricListingsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fyyur_listings_created_total",
			Help: "Number of venues, artists and shows listed",
		},
		[]string{"kind"},
	)
)
