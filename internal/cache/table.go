// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tomtom215/inflection/internal/logging"
	"github.com/tomtom215/inflection/internal/metrics"
	"github.com/tomtom215/inflection/internal/models"
)

// DefaultTTL is how long a fetched calls table is served before refetching.
const DefaultTTL = time.Hour

// Source produces the full calls table.
type Source interface {
	FetchCallsTable(ctx context.Context) (*models.CallsTable, error)
}

// Option configures a TableCache.
type Option func(*TableCache)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *TableCache) {
		c.now = now
	}
}

// TableCache holds the most recent calls table snapshot and refetches it
// from the source once it is older than the TTL.
//
// The lock guards only the snapshot swap. Fetches run outside it, so two
// concurrent misses may both hit the source; the later result wins.
type TableCache struct {
	source Source
	ttl    time.Duration
	now    func() time.Time

	mu        sync.RWMutex
	table     *models.CallsTable
	loadedAt  time.Time
	lastError string

	hits          atomic.Int64
	misses        atomic.Int64
	refreshes     atomic.Int64
	refreshErrors atomic.Int64
}

// New creates an empty cache. A non-positive ttl falls back to DefaultTTL.
func New(source Source, ttl time.Duration, opts ...Option) *TableCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &TableCache{
		source: source,
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Table returns the cached table while it is fresh, otherwise fetches a new
// one. Fetch errors are returned as is and leave the previous snapshot in
// place without serving it.
func (c *TableCache) Table(ctx context.Context) (*models.CallsTable, error) {
	if table, ok := c.fresh(); ok {
		c.hits.Add(1)
		metrics.TableCacheHits.Inc()
		return table, nil
	}

	c.misses.Add(1)
	metrics.TableCacheMisses.Inc()
	return c.refresh(ctx)
}

func (c *TableCache) fresh() (*models.CallsTable, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.table == nil {
		return nil, false
	}
	if c.now().Sub(c.loadedAt) >= c.ttl {
		return nil, false
	}
	return c.table, true
}

func (c *TableCache) refresh(ctx context.Context) (*models.CallsTable, error) {
	start := c.now()
	table, err := c.source.FetchCallsTable(ctx)
	if err != nil {
		c.refreshErrors.Add(1)
		metrics.RecordTableRefresh(0, start, err)

		c.mu.Lock()
		c.lastError = err.Error()
		c.mu.Unlock()

		logging.Ctx(ctx).Error().Err(err).Msg("Failed to refresh calls table")
		return nil, err
	}

	loadedAt := c.now()
	c.mu.Lock()
	c.table = table
	c.loadedAt = loadedAt
	c.lastError = ""
	c.mu.Unlock()

	c.refreshes.Add(1)
	metrics.RecordTableRefresh(table.Len(), loadedAt, nil)

	logging.Ctx(ctx).Info().
		Int("rows", table.Len()).
		Dur("duration", loadedAt.Sub(start)).
		Dur("ttl", c.ttl).
		Msg("Calls table refreshed")
	return table, nil
}

// TTL returns the configured time to live.
func (c *TableCache) TTL() time.Duration {
	return c.ttl
}

// Loaded reports whether a snapshot has ever been fetched.
func (c *TableCache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.table != nil
}

// Stats returns a point-in-time view of the cache.
func (c *TableCache) Stats() models.CacheStats {
	c.mu.RLock()
	table, loadedAt, lastError := c.table, c.loadedAt, c.lastError
	c.mu.RUnlock()

	stats := models.CacheStats{
		Loaded:        table != nil,
		Rows:          table.Len(),
		TTLSeconds:    c.ttl.Seconds(),
		Hits:          c.hits.Load(),
		Misses:        c.misses.Load(),
		Refreshes:     c.refreshes.Load(),
		RefreshErrors: c.refreshErrors.Load(),
		LastError:     lastError,
	}
	if table != nil {
		stats.FetchedAt = loadedAt
		stats.AgeSeconds = c.now().Sub(loadedAt).Seconds()
	}
	return stats
}
