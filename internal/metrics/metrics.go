// Package metrics defines the Prometheus collectors shared across the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Analysis engine metrics
var (
	// AnalysisRequestsTotal tracks analysis operations by kind and status
	AnalysisRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_requests_total",
			Help: "Total analysis operations by kind (sentiment/voice/facial) and status",
		},
		[]string{"kind", "status"},
	)

	// AnalysisDuration tracks analysis latency in seconds
	AnalysisDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analysis_duration_seconds",
			Help:    "Analysis operation duration in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
		},
		[]string{"kind"},
	)

	// SentimentCategoriesTotal tracks scored texts by category bucket
	SentimentCategoriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_categories_total",
			Help: "Scored texts by sentiment category",
		},
		[]string{"category"},
	)
)

// Interviewer (chat completion) metrics
var (
	// InterviewerRequestsTotal tracks AI interviewer calls by outcome
	InterviewerRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interviewer_requests_total",
			Help: "AI interviewer calls by outcome (api/fallback/error)",
		},
		[]string{"outcome"},
	)

	// InterviewerRequestDuration tracks chat completion latency in seconds
	InterviewerRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "interviewer_request_duration_seconds",
			Help:    "Chat completion request duration in seconds",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)
)

// Database metrics
var (
	// DBQueryDuration tracks database query latency in seconds
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"query"},
	)

	// DBErrorsTotal tracks database errors by operation
	DBErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_errors_total",
			Help: "Total database errors by operation",
		},
		[]string{"operation"},
	)
)

// Redis metrics
var (
	// RedisOpsTotal tracks total Redis operations by operation type and status
	RedisOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redis_operations_total",
			Help: "Total Redis operations by operation and status",
		},
		[]string{"operation", "status"},
	)

	// RedisOpDuration tracks Redis operation latency in seconds
	RedisOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "redis_operation_duration_seconds",
			Help:    "Redis operation duration in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25},
		},
		[]string{"operation"},
	)

	// RedisConnectionErrors tracks failed Redis connection attempts
	RedisConnectionErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "redis_connection_errors_total",
			Help: "Total failed Redis connection attempts",
		},
	)
)

// Live feed metrics
var (
	// LiveConnectionsCurrent tracks currently connected WebSocket clients
	LiveConnectionsCurrent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "live_connections_current",
			Help: "Currently connected live-feed WebSocket clients",
		},
	)

	// LiveMessagesSentTotal tracks messages pushed to live-feed clients
	LiveMessagesSentTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "live_messages_sent_total",
			Help: "Total messages pushed to live-feed clients",
		},
	)

	// LiveSlowClientsEvicted tracks clients dropped due to full send buffers
	LiveSlowClientsEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "live_slow_clients_evicted_total",
			Help: "Total slow live-feed clients evicted due to buffer full",
		},
	)
)

// Analysis service client metrics
var (
	// AnalysisClientRequestsTotal tracks backend calls to the analysis service
	AnalysisClientRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_client_requests_total",
			Help: "Backend requests to the analysis service by endpoint and status",
		},
		[]string{"endpoint", "status"},
	)

	// AnalysisClientBreakerState tracks the circuit breaker state (0=closed, 1=half-open, 2=open)
	AnalysisClientBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "analysis_client_breaker_state",
			Help: "Analysis client circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)
)
