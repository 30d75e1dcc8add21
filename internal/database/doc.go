// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

// Package database provides the warehouse backends that produce the calls table.
//
// # Overview
//
// The analytics layer never queries per request. It asks a CallsSource for the
// whole aggregated calls table once, and the table cache serves every request
// from that snapshot until it expires. Two sources implement CallsSource:
//
//   - DB: an embedded DuckDB warehouse. Used for local development, demos
//     (see SeedMockData) and tests.
//   - PostgresSource: a read-only pgx pool against an existing warehouse.
//
// # Files
//
//   - database.go: DuckDB lifecycle and the CallsSource interface
//   - database_schema.go: tables, indexes and write helpers for the DuckDB warehouse
//   - database_connection.go: pool settings and connection error classification
//   - database_utils.go: context timeouts, checkpoint, counts
//   - query.go: the aggregation query shared by both backends
//   - postgres.go: the PostgreSQL source
//   - seed.go: deterministic demo data
//
// # Aggregation
//
// Both backends run the same query. Raw calls are grouped by company, state,
// year and month; each row carries the call count, the number of distinct
// campaigns and the number of customers. Calls from before the configured
// minimum year, and on or after the optional cutoff date, are excluded.
//
// # Usage
//
//	db, err := database.New(&cfg.Database, cfg.Warehouse)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	table, err := db.FetchCallsTable(ctx)
package database
