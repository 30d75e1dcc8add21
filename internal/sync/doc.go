// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

/*
Package sync protects the warehouse connection used to refresh the calls table.

CircuitBreakerSource wraps any database.CallsSource with sony/gobreaker. The
breaker opens when the failure ratio over the current interval reaches the
configured threshold, after which fetches fail fast with gobreaker.ErrOpenState
until the timeout elapses and a probe fetch is allowed through (half-open).

Breaker activity is exported as Prometheus metrics:

  - circuit_breaker_state{name}: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total{name,result}: success, failure, rejected
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}

Example:

	source := sync.NewCircuitBreakerSource(db, cfg.Breaker)
	tables := cache.New(source, cfg.Cache.TTL)

The breaker never retries; a rejected or failed fetch goes straight back to
the table cache and from there to the HTTP caller.
*/
package sync
