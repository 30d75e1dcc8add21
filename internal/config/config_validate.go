// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package config

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// qualifiedTableName accepts table or schema.table made of plain identifiers.
var qualifiedTableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// ValidTableName reports whether name is a plain or schema-qualified identifier
// that is safe to interpolate into SQL.
func ValidTableName(name string) bool {
	return qualifiedTableName.MatchString(name)
}

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateWarehouse(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	if err := c.validateBreaker(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateWarehouse() error {
	if c.Warehouse.MinYear < 0 {
		return fmt.Errorf("WAREHOUSE_MIN_YEAR must not be negative")
	}
	if c.Warehouse.CutoffDate != "" {
		if _, err := time.Parse(time.DateOnly, c.Warehouse.CutoffDate); err != nil {
			return fmt.Errorf("WAREHOUSE_CUTOFF_DATE must be YYYY-MM-DD: %w", err)
		}
	}
	if c.Warehouse.FetchTimeout <= 0 {
		return fmt.Errorf("WAREHOUSE_FETCH_TIMEOUT must be positive")
	}

	switch c.Warehouse.Driver {
	case DriverDuckDB:
		if c.Database.Path == "" {
			return fmt.Errorf("DUCKDB_PATH is required when WAREHOUSE_DRIVER=duckdb")
		}
	case DriverPostgres:
		return c.validatePostgres()
	default:
		return fmt.Errorf("WAREHOUSE_DRIVER must be one of: %s, %s (got %q)", DriverDuckDB, DriverPostgres, c.Warehouse.Driver)
	}
	return nil
}

func (c *Config) validatePostgres() error {
	if c.Postgres.URL == "" {
		return fmt.Errorf("POSTGRES_URL is required when WAREHOUSE_DRIVER=postgres")
	}
	if !ValidTableName(c.Postgres.CallsTable) {
		return fmt.Errorf("POSTGRES_CALLS_TABLE %q is not a valid table name", c.Postgres.CallsTable)
	}
	if !ValidTableName(c.Postgres.CompaniesTable) {
		return fmt.Errorf("POSTGRES_COMPANIES_TABLE %q is not a valid table name", c.Postgres.CompaniesTable)
	}
	if c.Postgres.MaxConns < 1 {
		return fmt.Errorf("POSTGRES_MAX_CONNS must be at least 1")
	}
	if c.Postgres.MinConns < 0 || c.Postgres.MinConns > c.Postgres.MaxConns {
		return fmt.Errorf("POSTGRES_MIN_CONNS must be between 0 and POSTGRES_MAX_CONNS")
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	if c.Cache.WarmInterval < 0 {
		return fmt.Errorf("CACHE_WARM_INTERVAL must not be negative")
	}
	return nil
}

func (c *Config) validateBreaker() error {
	if !c.Breaker.Enabled {
		return nil
	}
	if c.Breaker.FailureRatio <= 0 || c.Breaker.FailureRatio > 1 {
		return fmt.Errorf("BREAKER_FAILURE_RATIO must be in (0, 1]")
	}
	if c.Breaker.Timeout <= 0 {
		return fmt.Errorf("BREAKER_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error (got %q)", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console (got %q)", c.Logging.Format)
	}
	return nil
}
