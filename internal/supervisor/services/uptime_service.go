// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package services

import (
	"context"
	"time"

	"github.com/tomtom215/inflection/internal/metrics"
)

// UptimeService refreshes the app_uptime_seconds gauge.
type UptimeService struct {
	start    time.Time
	interval time.Duration
}

// NewUptimeService reports uptime relative to start every interval (default 15s).
func NewUptimeService(start time.Time, interval time.Duration) *UptimeService {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &UptimeService{start: start, interval: interval}
}

// Serve implements suture.Service.
func (s *UptimeService) Serve(ctx context.Context) error {
	metrics.UpdateUptime(s.start)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			metrics.UpdateUptime(s.start)
		}
	}
}

func (s *UptimeService) String() string {
	return "uptime-reporter"
}
