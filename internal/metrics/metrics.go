package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Conversion metrics.
var (
	WordsConverted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kanafy_words_converted_total",
		Help: "Words converted by source (dictionary or fallback)",
	}, []string{"source"})

	ConversionErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kanafy_conversion_errors_total",
		Help: "Conversions that failed, by reason",
	}, []string{"reason"})

	BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "kanafy_batch_size_words",
		Help:    "Number of words per batch conversion",
		Buckets: []float64{1, 5, 10, 50, 100, 250, 500},
	})

	DictionaryEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "kanafy_dictionary_entries",
		Help: "Number of entries in the loaded pronunciation dictionary",
	})
)

// Web server metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kanafy_http_requests_total",
		Help: "Total HTTP requests by route, method, and status code",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kanafy_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"route", "method"})

	QuotaWordsCharged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kanafy_quota_words_charged_total",
		Help: "Words charged against per-client quotas",
	})

	QuotaRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kanafy_quota_rejections_total",
		Help: "Requests rejected for exceeding the per-client word quota, by route",
	}, []string{"route"})
)

// Database pool metrics (gauges updated periodically).
var (
	DBPoolTotalConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "kanafy_db_pool_total_conns",
		Help: "Total number of connections in the pool",
	})

	DBPoolIdleConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "kanafy_db_pool_idle_conns",
		Help: "Number of idle connections in the pool",
	})

	DBPoolAcquiredConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "kanafy_db_pool_acquired_conns",
		Help: "Number of acquired connections in the pool",
	})

	DBPoolMaxConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "kanafy_db_pool_max_conns",
		Help: "Maximum number of connections allowed in the pool",
	})
)
