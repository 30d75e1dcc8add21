// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package models

import "time"

// ErrorResponse is the body written for every failed API request.
//
//	{"error": "No data found for the requested company", "details": "...", "code": "NOT_FOUND", "request_id": "..."}
type ErrorResponse struct {
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// CompaniesResponse is the body of GET /api/companies.
type CompaniesResponse struct {
	Companies []CompanySummary `json:"companies"`
}

// HealthStatus is the body of the health endpoints.
type HealthStatus struct {
	Status          string    `json:"status"` // "healthy", "degraded", "unhealthy"
	Version         string    `json:"version"`
	WarehouseDriver string    `json:"warehouse_driver"`
	WarehouseOK     bool      `json:"warehouse_connected"`
	CacheLoaded     bool      `json:"cache_loaded"`
	Uptime          float64   `json:"uptime_seconds"`
	Timestamp       time.Time `json:"timestamp"`
	Error           string    `json:"error,omitempty"`
}

// CacheStats is the body of GET /api/cache.
type CacheStats struct {
	Loaded        bool      `json:"loaded"`
	Rows          int       `json:"rows"`
	FetchedAt     time.Time `json:"fetched_at,omitempty"`
	AgeSeconds    float64   `json:"age_seconds"`
	TTLSeconds    float64   `json:"ttl_seconds"`
	Hits          int64     `json:"hits"`
	Misses        int64     `json:"misses"`
	Refreshes     int64     `json:"refreshes"`
	RefreshErrors int64     `json:"refresh_errors"`
	LastError     string    `json:"last_error,omitempty"`
}
