// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

// Package analysis computes seasonal inflection analyses from a calls table.
//
// The pipeline for one company is:
//
//  1. Filter the table by normalized company id (NotFound when empty)
//  2. BuildMonthlySeries: fold calls onto 12 calendar months, percentages of the total
//  3. Detect: classify months as peaks and valleys of the percentage curve
//  4. BuildAnnualTable: per-year rows, percentages of that year's total or absolute counts
//  5. BuildAnalysisPayload: assemble and round everything for the frontend
//
// # Detection Methods
//
//   - Hybrid (3-4 months), the default: local maxima at or above the mean, at least
//     3 months apart; valleys are the same on the negated curve
//   - Original (find_peaks): as Hybrid with a 2 month separation
//   - Mathematical Strict: the two highest and two lowest months by stable rank
//
// All functions are pure and safe for concurrent use; the table is never mutated.
//
// # Errors
//
// Failures are *Error values tagged with a Kind (NotFound, Validation, Upstream)
// that the HTTP layer maps to status codes with KindOf.
package analysis
