// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

// Package config loads and validates Inflection's configuration.
//
// Configuration is layered with koanf v2, later layers overriding earlier ones:
//
//  1. Built-in defaults (defaultConfig)
//  2. Optional YAML file (CONFIG_PATH, config.yaml, /etc/inflection/config.yaml)
//  3. Environment variables (HTTP_PORT, PORT, DUCKDB_PATH, WAREHOUSE_DRIVER,
//     POSTGRES_URL, CACHE_TTL, CORS_ORIGINS, LOG_LEVEL, ...)
//
// Example config.yaml:
//
//	server:
//	  port: 8080
//	  static_dir: ./web/dist
//	warehouse:
//	  driver: postgres
//	  min_year: 2015
//	  cutoff_date: "2025-10-01"
//	postgres:
//	  url: postgres://analytics@warehouse:5432/calls
//	cache:
//	  ttl: 1h
//	  warm_on_start: true
package config
