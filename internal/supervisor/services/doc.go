// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

/*
Package services provides suture.Service wrappers for Inflection components.

Each wrapper implements the suture.Service interface and fmt.Stringer:

	type Service interface {
	    Serve(ctx context.Context) error
	}

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts the ListenAndServe pattern to Serve

Cache Warmer (CacheWarmerService):
  - Loads the calls table on start when cache.warm_on_start is set
  - Re-runs every cache.warm_interval through the cache's Table path
  - Records table_cache_warm_runs_total

Uptime Reporter (UptimeService):
  - Refreshes the app_uptime_seconds gauge

# Usage

	tree.AddDataService(services.NewCacheWarmerService(tables, services.CacheWarmerConfig{
	    WarmOnStart: cfg.Cache.WarmOnStart,
	    Interval:    cfg.Cache.WarmInterval,
	}, logging.WithComponent("cache-warmer")))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
*/
package services
