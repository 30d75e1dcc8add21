// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

/*
Package main is the entry point for the Inflection server.

Inflection serves seasonality analytics over inbound call volume: for a company
it builds the average monthly call curve, marks peak and valley months, and
returns a year by month table.

# Application Architecture

	RootSupervisor ("inflection")
	├── DataSupervisor ("data-layer")
	│   ├── UptimeService
	│   └── CacheWarmerService (optional)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Initialization order:

 1. Configuration: Koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog with JSON or console output
 3. Warehouse: embedded DuckDB (optionally seeded) or Postgres via pgx
 4. Circuit breaker around the warehouse (breaker.enabled)
 5. Table cache with cache.ttl
 6. Chi router and HTTP server
 7. Supervisor tree, until SIGINT or SIGTERM

# Example Usage

Local run against a seeded embedded warehouse:

	export DUCKDB_PATH=:memory:
	export SEED_MOCK_DATA=true
	export LOG_FORMAT=console
	./inflection

Managed Postgres warehouse:

	export WAREHOUSE_DRIVER=postgres
	export POSTGRES_URL=postgres://analytics:secret@db:5432/calls
	export POSTGRES_CALLS_TABLE=analytics.inbound_calls
	export POSTGRES_COMPANIES_TABLE=analytics.companies
	export WAREHOUSE_CUTOFF_DATE=2025-07-01
	./inflection

Container platforms that assign PORT are honoured; HTTP_PORT wins when both are set.
*/
package main
