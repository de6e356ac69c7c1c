// Package metrics provides Prometheus metrics collection for the rate service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// RateCalculationsTotal counts checkout calculations by source and outcome.
	RateCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_calculations_total",
			Help: "Total number of shipping rate calculations",
		},
		[]string{"source", "outcome"},
	)

	// RateCalculationDuration tracks end-to-end calculation time.
	RateCalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rate_calculation_duration_seconds",
			Help:    "Shipping rate calculation duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	// ProviderRequestsTotal counts outbound rate-provider calls by carrier and result.
	ProviderRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_requests_total",
			Help: "Total number of rate provider requests",
		},
		[]string{"carrier", "result"},
	)

	// ProviderRequestDuration tracks outbound rate-provider latency.
	ProviderRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "provider_request_duration_seconds",
			Help:    "Rate provider request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"carrier"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current in-process cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CircuitBreakerState exposes breaker state (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
		},
		[]string{"name"},
	)

	// RateLimitRejectionsTotal counts requests refused by the rate limiter.
	RateLimitRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limit_rejections_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"scope"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordRateCalculation records metrics for one checkout calculation.
func RecordRateCalculation(duration time.Duration, source, outcome string) {
	RateCalculationDuration.Observe(duration.Seconds())
	RateCalculationsTotal.WithLabelValues(source, outcome).Inc()
}

// RecordProviderRequest records metrics for one outbound provider call.
func RecordProviderRequest(carrier, result string, duration time.Duration) {
	ProviderRequestsTotal.WithLabelValues(carrier, result).Inc()
	if duration > 0 {
		ProviderRequestDuration.WithLabelValues(carrier).Observe(duration.Seconds())
	}
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheSize updates the in-process cache size gauge.
func UpdateCacheSize(size int) {
	CacheSize.Set(float64(size))
}

// RecordCircuitBreakerState publishes the numeric state of a named breaker.
func RecordCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordRateLimitRejection counts one refused request for an ip or key scope.
func RecordRateLimitRejection(scope string) {
	RateLimitRejectionsTotal.WithLabelValues(scope).Inc()
}
