package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "showroom_http_requests_total",
		Help: "HTTP requests by method, route pattern and status.",
	}, []string{"method", "route", "status"})
	rateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "showroom_rate_limited_total",
		Help: "Requests rejected by the per-client rate limit.",
	})
	matchRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "showroom_match_requests_total",
		Help: "Quiz match requests served.",
	})
	matchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "showroom_match_duration_seconds",
		Help:    "Time spent deriving responses and ranking the catalog.",
		Buckets: prometheus.ExponentialBuckets(0.00005, 4, 8),
	})
	financeComparisons = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "showroom_finance_comparisons_total",
		Help: "Finance comparisons served, by winning option.",
	}, []string{"best"})
	reviewsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "showroom_reviews_created_total",
		Help: "Community reviews submitted.",
	})
)
