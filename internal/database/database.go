// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/inflection/internal/config"
	"github.com/tomtom215/inflection/internal/logging"
	"github.com/tomtom215/inflection/internal/metrics"
	"github.com/tomtom215/inflection/internal/models"
)

// CallsSource supplies the full calls table to the table cache.
type CallsSource interface {
	// FetchCallsTable reads every aggregated call row. It is a full scan
	// and is only called on cache misses.
	FetchCallsTable(ctx context.Context) (*models.CallsTable, error)
	Ping(ctx context.Context) error
	Close() error
	// Driver names the backend for logs and metric labels.
	Driver() string
}

// DB is the embedded DuckDB warehouse.
type DB struct {
	conn      *sql.DB
	cfg       *config.DatabaseConfig
	warehouse config.WarehouseConfig
}

var _ CallsSource = (*DB)(nil)

// New opens (or creates) the DuckDB database at cfg.Path and ensures the schema.
func New(cfg *config.DatabaseConfig, warehouse config.WarehouseConfig) (*DB, error) {
	numThreads := cfg.Threads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	if cfg.Path != ":memory:" {
		dbDir := filepath.Dir(cfg.Path)
		if dbDir != "" && dbDir != "." {
			if err := os.MkdirAll(dbDir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dbDir, err)
			}
		}
	}

	maxMemory := cfg.MaxMemory
	if maxMemory == "" {
		maxMemory = "1GB"
	}

	connStr := fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s&autoinstall_known_extensions=false&autoload_known_extensions=false",
		cfg.Path, numThreads, maxMemory)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{
		conn:      conn,
		cfg:       cfg,
		warehouse: warehouse,
	}

	db.configureConnectionPool()

	if err := db.initialize(); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	logging.Info().
		Str("path", cfg.Path).
		Int("threads", numThreads).
		Str("max_memory", maxMemory).
		Msg("DuckDB warehouse opened")

	return db, nil
}

// Driver implements CallsSource.
func (db *DB) Driver() string {
	return config.DriverDuckDB
}

// Conn exposes the underlying handle for tests and maintenance.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Close checkpoints the WAL and closes the connection.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.Checkpoint(ctx); err != nil {
		logging.Warn().Err(err).Msg("Failed to checkpoint database before close")
	}
	cancel()

	return db.conn.Close()
}

// Ping checks if the database connection is alive
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return fmt.Errorf("database connection is nil")
	}
	return db.conn.PingContext(ctx)
}

// FetchCallsTable runs the aggregation query and returns the result as an
// immutable table. Failures are returned wrapped; nothing is retried.
func (db *DB) FetchCallsTable(ctx context.Context) (*models.CallsTable, error) {
	ctx, cancel := db.fetchContext(ctx)
	defer cancel()

	start := time.Now()
	table, err := db.fetchCallsTable(ctx)
	metrics.RecordWarehouseFetch(db.Driver(), time.Since(start), table.Len(), err)
	if err != nil {
		return nil, err
	}

	logging.Debug().
		Int("rows", table.Len()).
		Dur("duration", time.Since(start)).
		Msg("Fetched calls table from DuckDB")
	return table, nil
}

func (db *DB) fetchCallsTable(ctx context.Context) (*models.CallsTable, error) {
	query, args, err := buildFetchQuery(dialectDuckDB, callsTableName, companiesTableName, db.warehouse)
	if err != nil {
		return nil, err
	}

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query calls table: %w", err)
	}
	defer closeWithLog(rows, nil, "calls rows")

	var records []models.CallRecord
	for rows.Next() {
		var (
			companyID string
			name      sql.NullString
			campaigns int64
			customers int64
			state     sql.NullString
			year      int
			month     int
			calls     int64
		)
		if err := rows.Scan(&companyID, &name, &campaigns, &customers, &state, &year, &month, &calls); err != nil {
			return nil, fmt.Errorf("failed to scan calls row: %w", err)
		}
		records = append(records, newCallRecord(companyID, nullableString(name), campaigns, customers, nullableString(state), year, month, calls))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate calls rows: %w", err)
	}

	return models.NewCallsTable(records, time.Now(), fetchedColumns...), nil
}

// fetchContext applies the configured fetch timeout when ctx has no deadline.
func (db *DB) fetchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return withFetchTimeout(ctx, db.warehouse.FetchTimeout)
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
