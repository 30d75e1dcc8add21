// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built on first use and reused, so struct
// metadata is parsed once. Field names in messages come from json tags, which
// keeps them aligned with what the client sent:
//
//	req := validation.AnalysisRequest{CompanyID: "", DetectionMethod: "Hybrid (3-4 months)", AnalysisMode: "percentages"}
//	err := req.Validate()
//	// err.Error() == "Missing company_id parameter"
//
// Messages for the common tags (required, oneof, min, max, gte, lte) are
// translated; anything else falls back to
// "<field> failed <tag> validation".
package validation
