// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/inflection/internal/metrics"
	"github.com/tomtom215/inflection/internal/models"
)

// TableWarmer is the table cache as seen by the warmer.
type TableWarmer interface {
	Table(ctx context.Context) (*models.CallsTable, error)
}

// CacheWarmerConfig holds configuration for the cache warmer.
type CacheWarmerConfig struct {
	// WarmOnStart loads the table as soon as the service starts.
	WarmOnStart bool

	// Interval between warm runs. Zero disables periodic warming. A run
	// inside the cache TTL is a cache hit and does not reach the warehouse.
	Interval time.Duration

	// Timeout bounds a single warm run.
	// Default: 5m
	Timeout time.Duration
}

// CacheWarmerService pre-populates the table cache through the same
// Table path requests use.
type CacheWarmerService struct {
	cache  TableWarmer
	config CacheWarmerConfig
	logger zerolog.Logger
	name   string
}

// NewCacheWarmerService creates a new cache warmer.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheWarmerService(cache TableWarmer, cfg CacheWarmerConfig, logger zerolog.Logger) *CacheWarmerService {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Minute
	}
	return &CacheWarmerService{
		cache:  cache,
		config: cfg,
		logger: logger.With().Str("service", "cache-warmer").Logger(),
		name:   "cache-warmer",
	}
}

// Serve implements the suture.Service interface. Warm failures are logged and
// retried on the next tick; Serve only returns on cancellation.
func (s *CacheWarmerService) Serve(ctx context.Context) error {
	s.logger.Info().
		Bool("warm_on_start", s.config.WarmOnStart).
		Dur("interval", s.config.Interval).
		Msg("cache warmer starting")

	if s.config.WarmOnStart {
		s.warm(ctx)
	}

	if s.config.Interval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("cache warmer shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.warm(ctx)
		}
	}
}

// warm performs one bounded Table call and records the outcome.
func (s *CacheWarmerService) warm(ctx context.Context) {
	warmCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	start := time.Now()
	table, err := s.cache.Table(warmCtx)
	metrics.RecordCacheWarm(err)

	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Warn().Err(err).Dur("duration", time.Since(start)).Msg("cache warm failed (will retry on schedule)")
		return
	}

	s.logger.Debug().
		Int("rows", table.Len()).
		Dur("duration", time.Since(start)).
		Msg("cache warm complete")
}

// String returns the service name for logging.
func (s *CacheWarmerService) String() string {
	return s.name
}
