// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package models

// AnalysisPayload is the response body of the inflection analysis endpoint.
// Field names are consumed by the frontend and must stay stable.
type AnalysisPayload struct {
	CompanyID            string                        `json:"company_id"`
	CompanyName          string                        `json:"company_name"`
	DetectionMethod      string                        `json:"detection_method"`
	AnalysisMode         string                        `json:"analysis_mode"`
	TotalCalls           int64                         `json:"total_calls"`
	CurveData            []CurvePoint                  `json:"curve_data"`
	PeakMonths           []int                         `json:"peak_months"`
	ValleyMonths         []int                         `json:"valley_months"`
	AnnualTable          map[string]map[string]float64 `json:"annual_table"` // year -> month -> value
	MonthlyCallBreakdown MonthlyCallBreakdown          `json:"monthly_call_breakdown"`
	YearRange            [2]int                        `json:"year_range"` // [min, max]
	Summary              *AnalysisSummary              `json:"summary,omitempty"`
}

// CurvePoint is one month of the seasonal curve.
type CurvePoint struct {
	Month      int     `json:"month"`
	Percentage float64 `json:"percentage"` // 4 decimals
	Calls      float64 `json:"calls"`
}

// MonthlyCallBreakdown holds the curve as parallel arrays indexed by month-1.
type MonthlyCallBreakdown struct {
	Months      []int     `json:"months"`
	Calls       []int64   `json:"calls"`
	Percentages []float64 `json:"percentages"`
}

// AnalysisSummary carries aggregates of the optional source columns.
// Each field is present only when the matching column exists.
type AnalysisSummary struct {
	Campaigns *int64   `json:"campaigns,omitempty"` // max over rows
	Customers *int64   `json:"customers,omitempty"` // sum over rows
	States    []string `json:"states,omitempty"`    // sorted unique labels
}

// IsEmpty reports whether no summary field is set.
func (s *AnalysisSummary) IsEmpty() bool {
	return s == nil || (s.Campaigns == nil && s.Customers == nil && len(s.States) == 0)
}

// CompanySummary is one entry of the company catalog.
type CompanySummary struct {
	CompanyID   string `json:"company_id"`
	CompanyName string `json:"company_name"`
}
