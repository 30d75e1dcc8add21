// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tomtom215/inflection/internal/config"
	"github.com/tomtom215/inflection/internal/logging"
	"github.com/tomtom215/inflection/internal/metrics"
	"github.com/tomtom215/inflection/internal/models"
)

// PostgresSource reads the calls table from an existing PostgreSQL warehouse.
// It never writes.
type PostgresSource struct {
	pool      *pgxpool.Pool
	cfg       config.PostgresConfig
	warehouse config.WarehouseConfig
}

var _ CallsSource = (*PostgresSource)(nil)

// newPoolConfig parses the URL and applies pool limits.
func newPoolConfig(cfg config.PostgresConfig) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres url: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}
	if cfg.ConnectTimeout > 0 {
		poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "inflection"
	return poolCfg, nil
}

// NewPostgresSource connects to the warehouse and verifies the connection.
func NewPostgresSource(ctx context.Context, cfg config.PostgresConfig, warehouse config.WarehouseConfig) (*PostgresSource, error) {
	// Reject bad table names before dialing.
	if _, _, err := buildFetchQuery(dialectPostgres, cfg.CallsTable, cfg.CompaniesTable, warehouse); err != nil {
		return nil, err
	}

	poolCfg, err := newPoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	connectCtx, cancel := withFetchTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}
	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	logging.Info().
		Str("host", poolCfg.ConnConfig.Host).
		Str("database", poolCfg.ConnConfig.Database).
		Int32("max_conns", poolCfg.MaxConns).
		Str("calls_table", cfg.CallsTable).
		Msg("PostgreSQL warehouse connected")

	return &PostgresSource{pool: pool, cfg: cfg, warehouse: warehouse}, nil
}

// Driver implements CallsSource.
func (p *PostgresSource) Driver() string {
	return config.DriverPostgres
}

// Ping implements CallsSource.
func (p *PostgresSource) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close implements CallsSource.
func (p *PostgresSource) Close() error {
	p.pool.Close()
	return nil
}

// FetchCallsTable implements CallsSource.
func (p *PostgresSource) FetchCallsTable(ctx context.Context) (*models.CallsTable, error) {
	ctx, cancel := withFetchTimeout(ctx, p.warehouse.FetchTimeout)
	defer cancel()

	start := time.Now()
	table, err := p.fetchCallsTable(ctx)
	metrics.RecordWarehouseFetch(p.Driver(), time.Since(start), table.Len(), err)
	if err != nil {
		return nil, err
	}

	logging.Debug().
		Int("rows", table.Len()).
		Dur("duration", time.Since(start)).
		Msg("Fetched calls table from PostgreSQL")
	return table, nil
}

func (p *PostgresSource) fetchCallsTable(ctx context.Context) (*models.CallsTable, error) {
	query, args, err := buildFetchQuery(dialectPostgres, p.cfg.CallsTable, p.cfg.CompaniesTable, p.warehouse)
	if err != nil {
		return nil, err
	}

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query calls table: %w", err)
	}
	defer rows.Close()

	var records []models.CallRecord
	for rows.Next() {
		var (
			companyID string
			name      *string
			campaigns int64
			customers int64
			state     *string
			year      int
			month     int
			calls     int64
		)
		if err := rows.Scan(&companyID, &name, &campaigns, &customers, &state, &year, &month, &calls); err != nil {
			return nil, fmt.Errorf("failed to scan calls row: %w", err)
		}
		records = append(records, newCallRecord(companyID, name, campaigns, customers, state, year, month, calls))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate calls rows: %w", err)
	}

	return models.NewCallsTable(records, time.Now(), fetchedColumns...), nil
}
