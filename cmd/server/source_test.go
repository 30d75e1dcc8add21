// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/inflection/internal/config"
	syncpkg "github.com/tomtom215/inflection/internal/sync"
)

func testConfig(driver string) *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{
			Path:         ":memory:",
			MaxMemory:    "256MB",
			Threads:      1,
			SeedMockData: true,
		},
		Warehouse: config.WarehouseConfig{
			Driver:       driver,
			MinYear:      2015,
			FetchTimeout: time.Minute,
		},
		Breaker: config.BreakerConfig{
			Enabled:      true,
			MaxRequests:  1,
			Interval:     time.Minute,
			Timeout:      time.Second,
			MinRequests:  10,
			FailureRatio: 0.6,
		},
	}
}

func TestOpenSourceSeededDuckDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	source, err := openSource(ctx, testConfig(config.DriverDuckDB))
	if err != nil {
		t.Fatalf("openSource: %v", err)
	}
	t.Cleanup(func() { _ = source.Close() })

	cb, ok := source.(*syncpkg.CircuitBreakerSource)
	if !ok {
		t.Fatalf("source is %T, want circuit breaker wrapper", source)
	}
	if cb.Driver() != config.DriverDuckDB {
		t.Errorf("Driver() = %q", cb.Driver())
	}

	table, err := source.FetchCallsTable(ctx)
	if err != nil {
		t.Fatalf("FetchCallsTable: %v", err)
	}
	if table.Len() == 0 {
		t.Error("seeded warehouse returned no rows")
	}
}

func TestOpenSourceWithoutBreaker(t *testing.T) {
	cfg := testConfig(config.DriverDuckDB)
	cfg.Breaker.Enabled = false
	cfg.Database.SeedMockData = false

	source, err := openSource(context.Background(), cfg)
	if err != nil {
		t.Fatalf("openSource: %v", err)
	}
	t.Cleanup(func() { _ = source.Close() })

	if _, ok := source.(*syncpkg.CircuitBreakerSource); ok {
		t.Error("breaker applied although disabled")
	}
}

func TestOpenSourceUnknownDriver(t *testing.T) {
	_, err := openSource(context.Background(), testConfig("sqlite"))
	if err == nil || !strings.Contains(err.Error(), "unsupported warehouse driver") {
		t.Errorf("err = %v, want unsupported driver", err)
	}
}
