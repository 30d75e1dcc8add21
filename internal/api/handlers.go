// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package api

import (
	"context"
	"time"

	"github.com/tomtom215/inflection/internal/config"
	"github.com/tomtom215/inflection/internal/models"
)

// TableProvider hands out the cached calls table. *cache.TableCache is the
// production implementation.
type TableProvider interface {
	Table(ctx context.Context) (*models.CallsTable, error)
	Loaded() bool
	Stats() models.CacheStats
}

// Pinger checks warehouse reachability for the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
	Driver() string
}

// healthPingTimeout bounds the warehouse ping of the health endpoints.
const healthPingTimeout = 3 * time.Second

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response, error and body helpers
//   - handlers_analysis.go: companies and inflection analysis
//   - handlers_health.go: health, liveness, readiness and cache stats
type Handler struct {
	tables    TableProvider
	source    Pinger
	config    *config.Config
	version   string
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// Example:
//
//	tables := cache.New(source, cfg.Cache.TTL)
//	handler := api.NewHandler(tables, source, cfg, version)
//	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg), cfg.Server.StaticDir)
//	http.ListenAndServe(cfg.Server.Addr(), router.SetupChi())
func NewHandler(tables TableProvider, source Pinger, cfg *config.Config, version string) *Handler {
	if version == "" {
		version = "dev"
	}
	return &Handler{
		tables:    tables,
		source:    source,
		config:    cfg,
		version:   version,
		startTime: time.Now(),
	}
}

// warehouseDriver returns the configured driver name for health output.
func (h *Handler) warehouseDriver() string {
	if h.source != nil {
		return h.source.Driver()
	}
	if h.config != nil {
		return h.config.Warehouse.Driver
	}
	return ""
}

// pingWarehouse reports whether the data source answers within healthPingTimeout.
func (h *Handler) pingWarehouse(ctx context.Context) error {
	if h.source == nil {
		return errNoSource
	}
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	return h.source.Ping(ctx)
}
