package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deeptrace_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"path", "method", "status"},
	)

	RequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "deeptrace_http_request_duration_seconds",
			Help:    "Time taken to serve HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
	)

	RecordsLoaded = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "deeptrace_records_loaded",
			Help: "Number of records in each loaded collection",
		},
		[]string{"collection"},
	)

	DanglingReferences = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deeptrace_dangling_references_total",
			Help: "Total number of foreign keys that did not resolve during enrichment",
		},
		[]string{"collection"},
	)

	AnalysesStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "deeptrace_analyses_started_total",
			Help: "Total number of analysis runs started",
		},
	)

	AnalysesCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "deeptrace_analyses_completed_total",
			Help: "Total number of analysis runs completed",
		},
	)
)
