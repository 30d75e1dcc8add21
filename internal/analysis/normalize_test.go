// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package analysis

import (
	"encoding/json"
	"testing"
)

func TestNormalizeMethod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Method
	}{
		{"", MethodHybrid},
		{"foo", MethodHybrid},
		{"Hybrid (3-4 months)", MethodHybrid},
		{"hybrid", MethodHybrid},
		{"HYBRID (3-4 MONTHS)", MethodHybrid},
		{"Mathematical Strict", MethodStrict},
		{"  strict ", MethodStrict},
		{"mathematical strict", MethodStrict},
		{"Original (find_peaks)", MethodOriginal},
		{"original", MethodOriginal},
		{"FIND_PEAKS", MethodOriginal},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeMethod(tt.input); got != tt.want {
				t.Errorf("NormalizeMethod(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Mode
	}{
		{"", ModePercentages},
		{"percentages", ModePercentages},
		{"Percentage", ModePercentages},
		{"percent", ModePercentages},
		{"porcentajes", ModePercentages},
		{"absolute", ModeAbsolute},
		{" ABSOLUTO ", ModeAbsolute},
		{"absolute numbers", ModeAbsolute},
		{"raw", ModePercentages},
	}

	for _, tt := range tests {
		if got := NormalizeMode(tt.input); got != tt.want {
			t.Errorf("NormalizeMode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeCompanyID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"nil", nil, ""},
		{"string", "abc", "abc"},
		{"padded string", "  42 ", "42"},
		{"bytes", []byte(" 7\n"), "7"},
		{"int", 42, "42"},
		{"int64", int64(1234567890123), "1234567890123"},
		{"uint32", uint32(9), "9"},
		{"integral float", 42.0, "42"},
		{"fractional float", 42.5, "42.5"},
		{"float32", float32(3), "3"},
		{"json number", json.Number("1001"), "1001"},
		{"json number integral float", json.Number("1001.0"), "1001"},
		{"json number fraction", json.Number("10.5"), "10.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeCompanyID(tt.input); got != tt.want {
				t.Errorf("NormalizeCompanyID(%#v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRounding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value  float64
		places int32
		want   float64
	}{
		{0.125, 2, 0.13},
		{33.33333333, 4, 33.3333},
		{66.666666, 2, 66.67},
		{-2.5, 0, -3},
		{1.005, 2, 1.01},
		{0, 4, 0},
	}
	for _, tt := range tests {
		if got := roundTo(tt.value, tt.places); got != tt.want {
			t.Errorf("roundTo(%v, %d) = %v, want %v", tt.value, tt.places, got, tt.want)
		}
	}

	ints := map[float64]int64{2.5: 3, -2.5: -3, 2.4999: 2, 99.5: 100, 0: 0}
	for in, want := range ints {
		if got := roundInt(in); got != want {
			t.Errorf("roundInt(%v) = %d, want %d", in, got, want)
		}
	}
}
