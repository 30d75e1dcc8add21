// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/inflection/internal/api"
	"github.com/tomtom215/inflection/internal/cache"
	"github.com/tomtom215/inflection/internal/config"
	"github.com/tomtom215/inflection/internal/logging"
	"github.com/tomtom215/inflection/internal/metrics"
	"github.com/tomtom215/inflection/internal/supervisor"
	"github.com/tomtom215/inflection/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("Inflection exited with error")
		os.Exit(1)
	}
}

func run() error {
	start := time.Now()

	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	metrics.SetAppInfo(version)

	logging.Info().
		Str("version", version).
		Str("driver", cfg.Warehouse.Driver).
		Str("addr", cfg.Server.Addr()).
		Dur("cache_ttl", cfg.Cache.TTL).
		Msg("Starting Inflection with supervisor tree")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, err := openSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := source.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing warehouse")
		}
	}()

	tables := cache.New(source, cfg.Cache.TTL)

	handler := api.NewHandler(tables, source, cfg, version)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg), cfg.Server.StaticDir)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		// The first analysis after a TTL expiry waits on the warehouse scan.
		WriteTimeout: cfg.Server.Timeout + cfg.Warehouse.FetchTimeout,
		IdleTimeout:  2 * time.Minute,
	}

	treeConfig := supervisor.DefaultTreeConfig()
	treeConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout + 5*time.Second
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), treeConfig)
	if err != nil {
		return err
	}

	tree.AddDataService(services.NewUptimeService(start, 15*time.Second))
	if cfg.Cache.WarmOnStart || cfg.Cache.WarmInterval > 0 {
		tree.AddDataService(services.NewCacheWarmerService(tables, services.CacheWarmerConfig{
			WarmOnStart: cfg.Cache.WarmOnStart,
			Interval:    cfg.Cache.WarmInterval,
			Timeout:     cfg.Warehouse.FetchTimeout,
		}, logging.WithComponent("cache-warmer")))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	var treeErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
		treeErr = <-errCh
	case treeErr = <-errCh:
	}
	if treeErr != nil && !errors.Is(treeErr, context.Canceled) {
		logging.Error().Err(treeErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Dur("uptime", time.Since(start)).Msg("Application stopped gracefully")
	return nil
}
