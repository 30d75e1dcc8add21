// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

// Package logging provides the zerolog-based structured logger shared by every
// Inflection component.
//
// A single global logger is configured once at startup from the logging section
// of the configuration and used through package-level helpers:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("company_id", id).Msg("Analysis served")
//	logging.Error().Err(err).Msg("Warehouse fetch failed")
//
// # Configuration
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json or console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// # Request Context
//
// The request ID middleware stores a request ID and a correlation ID in the
// request context. Ctx returns a logger carrying both:
//
//	logging.Ctx(r.Context()).Warn().Msg("Unknown company")
//
// # slog Bridge
//
// SlogHandler adapts zerolog to log/slog for the supervisor tree, which logs
// through sutureslog.
package logging
