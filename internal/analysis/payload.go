// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package analysis

import (
	"sort"
	"strconv"
	"strings"

	"github.com/tomtom215/inflection/internal/models"
)

// Display precision of the payload.
const (
	curvePercentPlaces  = 4
	annualPercentPlaces = 2
)

// BuildAnalysisPayload runs the full pipeline for one company: monthly series,
// inflection detection on its percentage curve, and the annual table. Unknown
// method and mode strings fall back to their defaults. The payload is returned
// whole or not at all.
func BuildAnalysisPayload(table *models.CallsTable, companyID, method, mode string) (*models.AnalysisPayload, error) {
	m := NormalizeMethod(method)
	md := NormalizeMode(mode)

	id := NormalizeCompanyID(companyID)
	if id == "" {
		return nil, Validation("Missing company_id parameter")
	}

	rows, err := companyRecords(table, id)
	if err != nil {
		return nil, err
	}

	series := monthlySeries(rows)
	detected := Detect(series.Percentages[:], m)
	annual := annualTable(rows, md)

	payload := &models.AnalysisPayload{
		CompanyID:            id,
		CompanyName:          companyName(rows, id),
		DetectionMethod:      string(m),
		AnalysisMode:         string(md),
		TotalCalls:           roundInt(series.Total),
		CurveData:            curveData(series),
		PeakMonths:           detected.Peaks,
		ValleyMonths:         detected.Valleys,
		AnnualTable:          formatAnnualTable(annual),
		MonthlyCallBreakdown: breakdown(series),
		YearRange:            yearRange(rows),
	}

	if summary := buildSummary(table, rows); !summary.IsEmpty() {
		payload.Summary = summary
	}
	return payload, nil
}

// companyName returns the first non-empty name among rows, else id.
func companyName(rows []models.CallRecord, id string) string {
	for i := range rows {
		if rows[i].CompanyName == nil {
			continue
		}
		if name := strings.TrimSpace(*rows[i].CompanyName); name != "" {
			return name
		}
	}
	return id
}

func curveData(s MonthlySeries) []models.CurvePoint {
	points := make([]models.CurvePoint, MonthsPerYear)
	for m := range points {
		points[m] = models.CurvePoint{
			Month:      m + 1,
			Percentage: roundTo(s.Percentages[m], curvePercentPlaces),
			Calls:      s.Calls[m],
		}
	}
	return points
}

func breakdown(s MonthlySeries) models.MonthlyCallBreakdown {
	b := models.MonthlyCallBreakdown{
		Months:      make([]int, MonthsPerYear),
		Calls:       make([]int64, MonthsPerYear),
		Percentages: make([]float64, MonthsPerYear),
	}
	for m := 0; m < MonthsPerYear; m++ {
		b.Months[m] = m + 1
		b.Calls[m] = roundInt(s.Calls[m])
		b.Percentages[m] = roundTo(s.Percentages[m], curvePercentPlaces)
	}
	return b
}

// formatAnnualTable keys the table by year and month strings for the frontend.
func formatAnnualTable(t AnnualTable) map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(t.Years))
	for _, year := range t.Years {
		values := t.Rows[year]
		row := make(map[string]float64, MonthsPerYear)
		for m, v := range values {
			if t.Mode == ModePercentages {
				v = roundTo(v, annualPercentPlaces)
			}
			row[strconv.Itoa(m+1)] = v
		}
		out[strconv.Itoa(year)] = row
	}
	return out
}

func yearRange(rows []models.CallRecord) [2]int {
	lo, hi := rows[0].Year, rows[0].Year
	for i := range rows[1:] {
		y := rows[i+1].Year
		if y < lo {
			lo = y
		}
		if y > hi {
			hi = y
		}
	}
	return [2]int{lo, hi}
}

// buildSummary aggregates the optional columns the source produced.
func buildSummary(table *models.CallsTable, rows []models.CallRecord) *models.AnalysisSummary {
	summary := &models.AnalysisSummary{}

	if table.HasColumn(models.ColumnCampaigns) {
		var maxCampaigns *int64
		for i := range rows {
			if c := rows[i].Campaigns; c != nil && (maxCampaigns == nil || *c > *maxCampaigns) {
				v := *c
				maxCampaigns = &v
			}
		}
		summary.Campaigns = maxCampaigns
	}

	if table.HasColumn(models.ColumnCustomers) {
		var total int64
		for i := range rows {
			if c := rows[i].Customers; c != nil {
				total += *c
			}
		}
		summary.Customers = &total
	}

	if table.HasColumn(models.ColumnState) {
		seen := make(map[string]struct{})
		for i := range rows {
			if rows[i].State == nil {
				continue
			}
			if s := strings.TrimSpace(*rows[i].State); s != "" {
				seen[s] = struct{}{}
			}
		}
		if len(seen) > 0 {
			states := make([]string, 0, len(seen))
			for s := range seen {
				states = append(states, s)
			}
			sort.Strings(states)
			summary.States = states
		}
	}

	return summary
}
