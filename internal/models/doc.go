// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

/*
Package models defines the data structures shared across Inflection.

Key Components:

  - CallRecord / CallsTable: warehouse rows and the immutable snapshot cached in memory
  - AnalysisPayload: the inflection analysis response consumed by the frontend
  - CompanySummary: catalog entries for the company selector
  - ErrorResponse, HealthStatus, CacheStats: API envelopes

The JSON field names of AnalysisPayload are part of the frontend contract.
*/
package models
