// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Warehouse Metrics
	WarehouseFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "warehouse_fetch_duration_seconds",
			Help:    "Duration of full calls table fetches from the warehouse",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"driver"}, // "duckdb", "postgres"
	)

	WarehouseFetchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "warehouse_fetch_errors_total",
			Help: "Total number of failed warehouse fetches",
		},
		[]string{"driver"},
	)

	WarehouseRowsFetched = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "warehouse_rows_fetched",
			Help: "Number of rows returned by the last successful warehouse fetch",
		},
		[]string{"driver"},
	)

	// Table Cache Metrics
	TableCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "table_cache_hits_total",
			Help: "Total number of calls table reads served from cache",
		},
	)

	TableCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "table_cache_misses_total",
			Help: "Total number of calls table reads that required a fetch",
		},
	)

	TableCacheRefreshErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "table_cache_refresh_errors_total",
			Help: "Total number of failed calls table refreshes",
		},
	)

	TableCacheRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "table_cache_rows",
			Help: "Number of records in the cached calls table",
		},
	)

	TableCacheLastRefresh = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "table_cache_last_refresh_timestamp_seconds",
			Help: "Unix timestamp of the last successful calls table refresh",
		},
	)

	CacheWarmRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "table_cache_warm_runs_total",
			Help: "Total number of background cache warm runs",
		},
		[]string{"result"}, // "success", "failure"
	)

	// Analysis Metrics
	AnalysisRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_requests_total",
			Help: "Total number of inflection analyses by method, mode and outcome",
		},
		[]string{"method", "mode", "outcome"}, // outcome: "ok", "not_found", "invalid", "upstream", "error"
	)

	AnalysisDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analysis_duration_seconds",
			Help:    "Time spent aggregating and detecting inflections for one company",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
		},
		[]string{"method"},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"endpoint"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordWarehouseFetch records one full-table fetch against driver.
func RecordWarehouseFetch(driver string, duration time.Duration, rows int, err error) {
	WarehouseFetchDuration.WithLabelValues(driver).Observe(duration.Seconds())
	if err != nil {
		WarehouseFetchErrors.WithLabelValues(driver).Inc()
		return
	}
	WarehouseRowsFetched.WithLabelValues(driver).Set(float64(rows))
}

// RecordTableRefresh records the outcome of a cache refresh.
func RecordTableRefresh(rows int, at time.Time, err error) {
	if err != nil {
		TableCacheRefreshErrors.Inc()
		return
	}
	TableCacheRows.Set(float64(rows))
	TableCacheLastRefresh.Set(float64(at.Unix()))
}

// RecordCacheWarm records a background warm run.
func RecordCacheWarm(err error) {
	if err != nil {
		CacheWarmRuns.WithLabelValues("failure").Inc()
		return
	}
	CacheWarmRuns.WithLabelValues("success").Inc()
}

// RecordAnalysis records one analysis request.
func RecordAnalysis(method, mode, outcome string, duration time.Duration) {
	AnalysisRequests.WithLabelValues(method, mode, outcome).Inc()
	AnalysisDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// SetAppInfo publishes the build version.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

// UpdateUptime sets the uptime gauge relative to start.
func UpdateUptime(start time.Time) {
	AppUptime.Set(time.Since(start).Seconds())
}
