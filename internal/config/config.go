// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package config

import (
	"fmt"
	"time"
)

// Warehouse drivers.
const (
	DriverDuckDB   = "duckdb"
	DriverPostgres = "postgres"
)

// Config is the complete service configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Warehouse WarehouseConfig `koanf:"warehouse"`
	Postgres  PostgresConfig  `koanf:"postgres"`
	Cache     CacheConfig     `koanf:"cache"`
	Breaker   BreakerConfig   `koanf:"breaker"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	StaticDir       string        `koanf:"static_dir"` // Frontend bundle served at /
	Environment     string        `koanf:"environment"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds settings for the embedded DuckDB warehouse.
type DatabaseConfig struct {
	Path         string `koanf:"path"`           // File path or ":memory:"
	MaxMemory    string `koanf:"max_memory"`     // DuckDB memory_limit, e.g. "1GB"
	Threads      int    `koanf:"threads"`        // 0 = DuckDB default
	SeedMockData bool   `koanf:"seed_mock_data"` // Insert the demo dataset on startup when empty
}

// WarehouseConfig controls which backend supplies the calls table and how it is queried.
type WarehouseConfig struct {
	// Driver selects the backend: duckdb or postgres.
	Driver string `koanf:"driver"`

	// MinYear drops records from earlier years.
	// Default: 2015
	MinYear int `koanf:"min_year"`

	// CutoffDate excludes calls created on or after this date (YYYY-MM-DD).
	// Empty disables the cutoff.
	CutoffDate string `koanf:"cutoff_date"`

	// FetchTimeout bounds a single full-table fetch.
	FetchTimeout time.Duration `koanf:"fetch_timeout"`
}

// PostgresConfig holds settings for the Postgres warehouse backend.
type PostgresConfig struct {
	URL             string        `koanf:"url"`
	CallsTable      string        `koanf:"calls_table"`     // schema.table holding call rows
	CompaniesTable  string        `koanf:"companies_table"` // schema.table holding company names
	MaxConns        int32         `koanf:"max_conns"`
	MinConns        int32         `koanf:"min_conns"`
	MaxConnLifetime time.Duration `koanf:"max_conn_lifetime"`
	ConnectTimeout  time.Duration `koanf:"connect_timeout"`
}

// CacheConfig holds table cache settings.
type CacheConfig struct {
	// TTL is how long a fetched calls table is served before refetching.
	// Default: 1h
	TTL time.Duration `koanf:"ttl"`

	// WarmOnStart fetches the table in the background right after startup.
	WarmOnStart bool `koanf:"warm_on_start"`

	// WarmInterval re-warms the cache periodically. Zero disables periodic warming.
	WarmInterval time.Duration `koanf:"warm_interval"`
}

// BreakerConfig tunes the circuit breaker around the warehouse.
type BreakerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	MaxRequests  uint32        `koanf:"max_requests"` // Allowed requests while half-open
	Interval     time.Duration `koanf:"interval"`     // Closed-state counter reset period
	Timeout      time.Duration `koanf:"timeout"`      // Open duration before half-open
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// SecurityConfig holds the HTTP edge protections.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from the layered sources:
//  1. Built-in defaults
//  2. Config file (CONFIG_PATH, config.yaml, /etc/inflection/config.yaml)
//  3. Environment variables
func Load() (*Config, error) {
	return LoadWithKoanf()
}
