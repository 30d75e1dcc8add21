// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/inflection/internal/logging"
	"github.com/tomtom215/inflection/internal/models"
)

// Health reports warehouse connectivity and cache state.
//
// The status is "healthy" when the warehouse answers, "degraded" when it does
// not but a cached table can still serve requests, and "unhealthy" otherwise.
// The response code is always 200; use /api/health/ready for gating traffic.
//
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	pingErr := h.pingWarehouse(r.Context())
	cacheLoaded := h.tables != nil && h.tables.Loaded()

	status := "healthy"
	switch {
	case pingErr != nil && cacheLoaded:
		status = "degraded"
	case pingErr != nil:
		status = "unhealthy"
	}

	health := h.healthStatus(status, pingErr == nil, cacheLoaded)
	if pingErr != nil {
		health.Error = pingErr.Error()
	}

	respondJSON(w, http.StatusOK, health)
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// GET /api/health/live
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"alive":          true,
		"uptime_seconds": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if the warehouse answers a ping, 503 otherwise.
//
// GET /api/health/ready
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	pingErr := h.pingWarehouse(r.Context())
	cacheLoaded := h.tables != nil && h.tables.Loaded()

	if pingErr != nil {
		logging.Ctx(r.Context()).Warn().Err(pingErr).Msg("Readiness check failed")
		health := h.healthStatus("not_ready", false, cacheLoaded)
		health.Error = pingErr.Error()
		w.Header().Set("Cache-Control", "no-store")
		respondJSON(w, http.StatusServiceUnavailable, health)
		return
	}

	respondJSON(w, http.StatusOK, h.healthStatus("ready", true, cacheLoaded))
}

// CacheStats exposes table cache statistics.
//
// GET /api/cache
func (h *Handler) CacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.tables.Stats())
}

func (h *Handler) healthStatus(status string, warehouseOK, cacheLoaded bool) *models.HealthStatus {
	return &models.HealthStatus{
		Status:          status,
		Version:         h.version,
		WarehouseDriver: h.warehouseDriver(),
		WarehouseOK:     warehouseOK,
		CacheLoaded:     cacheLoaded,
		Uptime:          time.Since(h.startTime).Seconds(),
		Timestamp:       time.Now().UTC(),
	}
}
