// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

// Package metrics declares the Prometheus metrics exported at /metrics.
//
// Metrics are registered on the default registry with promauto and grouped by
// concern:
//
//   - warehouse_*: full-table fetch latency, errors and row counts per driver
//   - table_cache_*: hits, misses, refresh failures, cached rows, last refresh time
//   - analysis_*: requests by method/mode/outcome and computation latency
//   - api_*: request counts, latency, in-flight requests, rate limit rejections
//   - circuit_breaker_*: state, requests, consecutive failures, transitions
//   - app_*: build info and uptime
//
// Components call the Record* helpers rather than touching collectors directly.
package metrics
