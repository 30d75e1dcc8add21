// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

/*
Package middleware provides HTTP middleware shared by the API router.

  - RequestID: reuses or generates X-Request-ID and seeds the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge per chi route
  - Compression: gzip for clients that send Accept-Encoding: gzip

All three use the http.HandlerFunc form; the router adapts them to chi:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(chiMiddleware(middleware.Compression))

Handlers read the request ID with GetRequestID(r.Context()) or log through
logging.Ctx(r.Context()), which already carries it.
*/
package middleware
