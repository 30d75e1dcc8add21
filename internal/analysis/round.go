// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package analysis

import (
	"math"

	"github.com/shopspring/decimal"
)

// roundTo rounds v to places decimals, halves away from zero.
// Rounding goes through the shortest decimal representation of v so that
// 0.125 rounds to 0.13 rather than drifting on its binary expansion.
func roundTo(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

// roundInt rounds v to the nearest integer, halves away from zero.
func roundInt(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(0).IntPart()
}
