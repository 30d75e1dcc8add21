// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package analysis

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Method is a canonical detection method name.
type Method string

// Detection methods. The string values are returned to clients verbatim.
const (
	MethodHybrid   Method = "Hybrid (3-4 months)"
	MethodStrict   Method = "Mathematical Strict"
	MethodOriginal Method = "Original (find_peaks)"

	DefaultMethod = MethodHybrid
)

// Mode selects how the annual table is expressed.
type Mode string

// Analysis modes.
const (
	ModePercentages Mode = "percentages"
	ModeAbsolute    Mode = "absolute"

	DefaultMode = ModePercentages
)

var methodAliases = map[string]Method{
	"hybrid":                MethodHybrid,
	"hybrid (3-4 months)":   MethodHybrid,
	"mathematical strict":   MethodStrict,
	"strict":                MethodStrict,
	"original":              MethodOriginal,
	"original (find_peaks)": MethodOriginal,
	"find_peaks":            MethodOriginal,
}

var modeAliases = map[string]Mode{
	"percentages":      ModePercentages,
	"percentage":       ModePercentages,
	"percent":          ModePercentages,
	"porcentajes":      ModePercentages,
	"absolute":         ModeAbsolute,
	"absoluto":         ModeAbsolute,
	"absolute numbers": ModeAbsolute,
}

// NormalizeMethod maps free-form input to a canonical method.
// Unknown or empty input yields DefaultMethod.
func NormalizeMethod(raw string) Method {
	trimmed := strings.TrimSpace(raw)
	switch Method(trimmed) {
	case MethodHybrid, MethodStrict, MethodOriginal:
		return Method(trimmed)
	}
	if m, ok := methodAliases[strings.ToLower(trimmed)]; ok {
		return m
	}
	return DefaultMethod
}

// NormalizeMode maps free-form input to a canonical mode.
// Unknown or empty input yields DefaultMode.
func NormalizeMode(raw string) Mode {
	if m, ok := modeAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return m
	}
	return DefaultMode
}

// NormalizeCompanyID converts an identifier of any source type to the trimmed
// string form used for every comparison. Integral floats drop their fraction
// so that 42, 42.0 and "42" compare equal.
func NormalizeCompanyID(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(id)
	case []byte:
		return strings.TrimSpace(string(id))
	case int:
		return strconv.Itoa(id)
	case int32:
		return strconv.FormatInt(int64(id), 10)
	case int64:
		return strconv.FormatInt(id, 10)
	case uint:
		return strconv.FormatUint(uint64(id), 10)
	case uint32:
		return strconv.FormatUint(uint64(id), 10)
	case uint64:
		return strconv.FormatUint(id, 10)
	case float32:
		return formatFloatID(float64(id))
	case float64:
		return formatFloatID(id)
	case jsonNumber:
		if n, err := id.Int64(); err == nil {
			return strconv.FormatInt(n, 10)
		}
		if f, err := id.Float64(); err == nil {
			return formatFloatID(f)
		}
		return strings.TrimSpace(id.String())
	case fmt.Stringer:
		return strings.TrimSpace(id.String())
	default:
		return strings.TrimSpace(fmt.Sprint(id))
	}
}

// jsonNumber matches json.Number from decoders configured with UseNumber.
type jsonNumber interface {
	Int64() (int64, error)
	Float64() (float64, error)
	String() string
}

func formatFloatID(f float64) string {
	if f == math.Trunc(f) && !math.IsInf(f, 0) && math.Abs(f) < 1e18 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
