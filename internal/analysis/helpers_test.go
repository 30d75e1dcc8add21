// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package analysis

import (
	"math"
	"time"

	"github.com/tomtom215/inflection/internal/models"
)

const epsilon = 1e-9

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }

func record(id string, year, month int, calls float64) models.CallRecord {
	return models.CallRecord{CompanyID: id, Year: year, Month: month, Calls: calls}
}

// monthlyTable builds a single-year table for id with calls[m] in month m+1.
func monthlyTable(id string, calls []float64) *models.CallsTable {
	records := make([]models.CallRecord, 0, len(calls))
	for m, c := range calls {
		records = append(records, record(id, 2024, m+1, c))
	}
	return models.NewCallsTable(records, time.Now())
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
