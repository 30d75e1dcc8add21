// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package validation

// MaxCompanyIDLength bounds company identifiers accepted from clients.
const MaxCompanyIDLength = 128

// AnalysisRequest is an inflection analysis request after its identifier,
// method and mode have been normalized.
type AnalysisRequest struct {
	CompanyID       string `json:"company_id" validate:"required,max=128"`
	DetectionMethod string `json:"detection_method" validate:"required,max=64"`
	AnalysisMode    string `json:"analysis_mode" validate:"oneof=percentages absolute"`
}

// Validate checks the request and returns nil when it is acceptable.
func (r *AnalysisRequest) Validate() *RequestValidationError {
	return ValidateStruct(r)
}
