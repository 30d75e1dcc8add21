// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

// Package cache holds the process-wide calls table snapshot.
//
// A TableCache starts empty, is filled on the first request, and is
// refetched from its Source once the snapshot is older than the TTL. There
// is no other invalidation and no stale fallback: when a refetch fails the
// error goes to the caller and the next request tries again.
//
// Usage:
//
//	tables := cache.New(source, cfg.Cache.TTL)
//	table, err := tables.Table(ctx)
//	if err != nil {
//	    return analysis.Upstream(err)
//	}
package cache
