// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

/*
Package api provides the HTTP layer of Inflection.

Routes:

	GET  /api/companies            company catalog sorted by name
	POST /api/inflection-analysis  seasonal curve, peaks and valleys for one company
	POST /api/analysis             same handler, kept for older frontends
	GET  /api/health               warehouse and cache status
	GET  /api/health/live          liveness probe
	GET  /api/health/ready         readiness probe (pings the warehouse)
	GET  /api/cache                table cache statistics
	GET  /metrics                  Prometheus exposition
	GET  /*                        static frontend, with a fallback page at /

Analysis requests carry a JSON object:

	{"company_id": "1001", "detection_method": "Hybrid (3-4 months)", "analysis_mode": "percentages"}

companyId is accepted in place of company_id. Unknown methods and modes fall
back to the defaults. Successful responses are the bare payload; failures are
an ErrorResponse whose status follows the analysis error kind:

	not found    404  {"error": "No data found for the requested company", "details": "...", "code": "NOT_FOUND"}
	validation   400  {"error": "Missing company_id parameter", "code": "VALIDATION_ERROR"}
	upstream     500  {"error": "Internal server error", "details": "...", "code": "UPSTREAM_ERROR"}
	other        500  {"error": "Internal server error", "details": "...", "code": "INTERNAL_ERROR"}

Middleware:

Every request gets an X-Request-ID, real-IP extraction, panic recovery and
CORS (go-chi/cors). API routes add per-IP rate limiting (go-chi/httprate),
security headers, Prometheus metrics and gzip compression.

Usage:

	handler := api.NewHandler(tables, source, cfg, version)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg), cfg.Server.StaticDir)
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
*/
package api
