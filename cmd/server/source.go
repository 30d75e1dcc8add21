// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package main

import (
	"context"
	"fmt"

	"github.com/tomtom215/inflection/internal/config"
	"github.com/tomtom215/inflection/internal/database"
	"github.com/tomtom215/inflection/internal/logging"
	syncpkg "github.com/tomtom215/inflection/internal/sync"
)

// openSource opens the configured warehouse backend and, when enabled, wraps
// it in a circuit breaker. The caller owns the returned source and must Close it.
func openSource(ctx context.Context, cfg *config.Config) (database.CallsSource, error) {
	var source database.CallsSource

	switch cfg.Warehouse.Driver {
	case config.DriverDuckDB:
		db, err := database.New(&cfg.Database, cfg.Warehouse)
		if err != nil {
			return nil, fmt.Errorf("failed to open duckdb warehouse: %w", err)
		}

		if cfg.Database.SeedMockData {
			logging.Info().Msg("Mock data seeding enabled (SEED_MOCK_DATA=true)")
			if err := db.SeedMockData(ctx); err != nil {
				if closeErr := db.Close(); closeErr != nil {
					logging.Error().Err(closeErr).Msg("Error closing database")
				}
				return nil, fmt.Errorf("failed to seed mock data: %w", err)
			}
		}

		logging.Info().Str("path", cfg.Database.Path).Msg("DuckDB warehouse opened")
		source = db

	case config.DriverPostgres:
		pg, err := database.NewPostgresSource(ctx, cfg.Postgres, cfg.Warehouse)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres warehouse: %w", err)
		}

		logging.Info().
			Str("calls_table", cfg.Postgres.CallsTable).
			Str("companies_table", cfg.Postgres.CompaniesTable).
			Msg("Postgres warehouse connected")
		source = pg

	default:
		return nil, fmt.Errorf("unsupported warehouse driver %q", cfg.Warehouse.Driver)
	}

	if !cfg.Breaker.Enabled {
		return source, nil
	}

	cb := syncpkg.NewCircuitBreakerSource(source, cfg.Breaker)
	logging.Info().
		Str("name", cb.Name()).
		Dur("open_timeout", cfg.Breaker.Timeout).
		Float64("failure_ratio", cfg.Breaker.FailureRatio).
		Msg("Warehouse circuit breaker enabled")
	return cb, nil
}
