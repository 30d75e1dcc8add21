// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package sync

import (
	"context"
	"errors"
	"fmt"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/inflection/internal/config"
	"github.com/tomtom215/inflection/internal/database"
	"github.com/tomtom215/inflection/internal/logging"
	"github.com/tomtom215/inflection/internal/metrics"
	"github.com/tomtom215/inflection/internal/models"
)

// CircuitBreakerSource wraps a CallsSource so that a failing warehouse is
// not hammered by every cache miss. While the breaker is open fetches fail
// immediately with gobreaker.ErrOpenState. Nothing is retried.
//
// The breaker uses real time for its interval and timeout; tests drive it
// through request counts rather than the clock.
type CircuitBreakerSource struct {
	source database.CallsSource
	cb     *gobreaker.CircuitBreaker[*models.CallsTable]
	name   string
}

var _ database.CallsSource = (*CircuitBreakerSource)(nil)

// NewCircuitBreakerSource wraps source with a breaker configured from cfg.
// The circuit opens once at least cfg.MinRequests fetches have been seen in
// the current interval and the failure ratio reaches cfg.FailureRatio.
func NewCircuitBreakerSource(source database.CallsSource, cfg config.BreakerConfig) *CircuitBreakerSource {
	name := "warehouse-" + source.Driver()

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	minRequests := cfg.MinRequests
	if minRequests == 0 {
		minRequests = 10
	}
	failureRatio := cfg.FailureRatio
	if failureRatio <= 0 {
		failureRatio = 0.6
	}

	cb := gobreaker.NewCircuitBreaker[*models.CallsTable](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := ratio >= failureRatio
			if shouldTrip {
				logging.Warn().
					Str("breaker", name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", ratio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},

		// A caller giving up is not a warehouse failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return &CircuitBreakerSource{source: source, cb: cb, name: name}
}

// FetchCallsTable implements database.CallsSource.
func (s *CircuitBreakerSource) FetchCallsTable(ctx context.Context) (*models.CallsTable, error) {
	table, err := s.cb.Execute(func() (*models.CallsTable, error) {
		return s.source.FetchCallsTable(ctx)
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(s.name, "rejected").Inc()
			logging.Ctx(ctx).Warn().Str("breaker", s.name).Err(err).Msg("[CIRCUIT BREAKER] Fetch rejected")
			return nil, fmt.Errorf("warehouse %s unavailable: %w", s.source.Driver(), err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(s.name, "failure").Inc()
		counts := s.cb.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(s.name).Set(float64(counts.ConsecutiveFailures))
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(s.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(s.name).Set(0)
	return table, nil
}

// Ping bypasses the breaker so health checks always see the real backend.
func (s *CircuitBreakerSource) Ping(ctx context.Context) error {
	return s.source.Ping(ctx)
}

// Close implements database.CallsSource.
func (s *CircuitBreakerSource) Close() error {
	return s.source.Close()
}

// Driver implements database.CallsSource.
func (s *CircuitBreakerSource) Driver() string {
	return s.source.Driver()
}

// Name is the breaker name used in metric labels.
func (s *CircuitBreakerSource) Name() string {
	return s.name
}

// State returns the current breaker state as closed, half-open or open.
func (s *CircuitBreakerSource) State() string {
	return stateToString(s.cb.State())
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
