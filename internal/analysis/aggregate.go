// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package analysis

import (
	"sort"

	"github.com/tomtom215/inflection/internal/models"
)

// MonthsPerYear is the length of every monthly series.
const MonthsPerYear = 12

// MonthlySeries is a company's call volume folded onto calendar months.
// Index 0 is January.
type MonthlySeries struct {
	Calls       [MonthsPerYear]float64
	Percentages [MonthsPerYear]float64 // share of Total, all zero when Total is 0
	Total       float64
}

// AnnualTable holds one 12-month row per year present in a company's data.
type AnnualTable struct {
	Mode  Mode
	Years []int // ascending
	Rows  map[int][MonthsPerYear]float64
}

// companyRecords returns the rows belonging to companyID.
func companyRecords(table *models.CallsTable, companyID string) ([]models.CallRecord, error) {
	id := NormalizeCompanyID(companyID)
	if table == nil {
		return nil, NotFound(id)
	}

	var rows []models.CallRecord
	for i := range table.Records {
		if NormalizeCompanyID(table.Records[i].CompanyID) == id {
			rows = append(rows, table.Records[i])
		}
	}
	if len(rows) == 0 {
		return nil, NotFound(id)
	}
	return rows, nil
}

// validMonth reports whether m is a calendar month.
func validMonth(m int) bool {
	return m >= 1 && m <= MonthsPerYear
}

// BuildMonthlySeries sums a company's calls per calendar month across all years.
// It returns a NotFound error when the table has no rows for companyID.
func BuildMonthlySeries(table *models.CallsTable, companyID string) (MonthlySeries, error) {
	rows, err := companyRecords(table, companyID)
	if err != nil {
		return MonthlySeries{}, err
	}
	return monthlySeries(rows), nil
}

func monthlySeries(rows []models.CallRecord) MonthlySeries {
	var s MonthlySeries
	for i := range rows {
		if !validMonth(rows[i].Month) {
			continue
		}
		s.Calls[rows[i].Month-1] += rows[i].Calls
	}
	for _, c := range s.Calls {
		s.Total += c
	}
	if s.Total > 0 {
		for m, c := range s.Calls {
			s.Percentages[m] = c / s.Total * 100
		}
	}
	return s
}

// BuildAnnualTable groups a company's calls by year and month. In percentages
// mode each row is divided by that year's own total; in absolute mode values
// are rounded to whole calls.
func BuildAnnualTable(table *models.CallsTable, companyID string, mode Mode) (AnnualTable, error) {
	rows, err := companyRecords(table, companyID)
	if err != nil {
		return AnnualTable{}, err
	}
	return annualTable(rows, NormalizeMode(string(mode))), nil
}

func annualTable(rows []models.CallRecord, mode Mode) AnnualTable {
	sums := make(map[int][MonthsPerYear]float64)
	for i := range rows {
		if !validMonth(rows[i].Month) {
			continue
		}
		row := sums[rows[i].Year]
		row[rows[i].Month-1] += rows[i].Calls
		sums[rows[i].Year] = row
	}

	years := make([]int, 0, len(sums))
	for year := range sums {
		years = append(years, year)
	}
	sort.Ints(years)

	out := AnnualTable{Mode: mode, Years: years, Rows: make(map[int][MonthsPerYear]float64, len(sums))}
	for _, year := range years {
		row := sums[year]
		switch mode {
		case ModeAbsolute:
			for m := range row {
				row[m] = float64(roundInt(row[m]))
			}
		case ModePercentages:
			var total float64
			for _, v := range row {
				total += v
			}
			for m := range row {
				if total > 0 {
					row[m] = row[m] / total * 100
				} else {
					row[m] = 0
				}
			}
		}
		out.Rows[year] = row
	}
	return out
}
