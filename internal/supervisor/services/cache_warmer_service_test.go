// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package services

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/inflection/internal/metrics"
	"github.com/tomtom215/inflection/internal/models"
)

var _ suture.Service = (*CacheWarmerService)(nil)

// countingWarmer counts Table calls and fails while failing is set.
type countingWarmer struct {
	calls   atomic.Int32
	failing atomic.Bool
}

func (w *countingWarmer) Table(ctx context.Context) (*models.CallsTable, error) {
	w.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if w.failing.Load() {
		return nil, errors.New("warehouse unavailable")
	}
	return models.NewCallsTable([]models.CallRecord{{CompanyID: "1", Year: 2020, Month: 1, Calls: 1}}, time.Now()), nil
}

func nopLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func waitUntil(timeout time.Duration, cond func() bool) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}

func TestCacheWarmerWarmsOnStart(t *testing.T) {
	warmer := &countingWarmer{}
	svc := NewCacheWarmerService(warmer, CacheWarmerConfig{WarmOnStart: true}, nopLogger())

	before := testutil.ToFloat64(metrics.CacheWarmRuns.WithLabelValues("success"))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	if !waitUntil(time.Second, func() bool { return warmer.calls.Load() == 1 }) {
		t.Fatalf("Table called %d times, want 1", warmer.calls.Load())
	}

	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve returned %v, want context.Canceled", err)
	}

	if got := testutil.ToFloat64(metrics.CacheWarmRuns.WithLabelValues("success")) - before; got < 1 {
		t.Errorf("success warm runs increased by %v, want >= 1", got)
	}
	if warmer.calls.Load() != 1 {
		t.Errorf("Table called %d times without interval, want 1", warmer.calls.Load())
	}
}

func TestCacheWarmerIdleWithoutConfig(t *testing.T) {
	warmer := &countingWarmer{}
	svc := NewCacheWarmerService(warmer, CacheWarmerConfig{}, nopLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve returned %v, want deadline exceeded", err)
	}
	if warmer.calls.Load() != 0 {
		t.Errorf("Table called %d times, want 0", warmer.calls.Load())
	}
}

func TestCacheWarmerRetriesOnInterval(t *testing.T) {
	warmer := &countingWarmer{}
	warmer.failing.Store(true)
	svc := NewCacheWarmerService(warmer, CacheWarmerConfig{WarmOnStart: true, Interval: 10 * time.Millisecond}, nopLogger())

	beforeFail := testutil.ToFloat64(metrics.CacheWarmRuns.WithLabelValues("failure"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	if !waitUntil(2*time.Second, func() bool { return warmer.calls.Load() >= 3 }) {
		t.Fatalf("Table called %d times, want >= 3", warmer.calls.Load())
	}

	select {
	case err := <-errCh:
		t.Fatalf("Serve returned early: %v", err)
	default:
	}

	if got := testutil.ToFloat64(metrics.CacheWarmRuns.WithLabelValues("failure")) - beforeFail; got < 3 {
		t.Errorf("failure warm runs increased by %v, want >= 3", got)
	}

	cancel()
	<-errCh
}

func TestNewCacheWarmerServiceDefaults(t *testing.T) {
	svc := NewCacheWarmerService(&countingWarmer{}, CacheWarmerConfig{}, nopLogger())
	if svc.config.Timeout != 5*time.Minute {
		t.Errorf("Timeout = %v, want 5m", svc.config.Timeout)
	}
	if svc.String() != "cache-warmer" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestUptimeService(t *testing.T) {
	start := time.Now().Add(-time.Minute)
	svc := NewUptimeService(start, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve returned %v", err)
	}
	if got := testutil.ToFloat64(metrics.AppUptime); got < 60 {
		t.Errorf("uptime = %v, want >= 60", got)
	}
	if NewUptimeService(start, 0).interval != 15*time.Second {
		t.Error("default interval not applied")
	}
}
