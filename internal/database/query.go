// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/inflection/internal/config"
	"github.com/tomtom215/inflection/internal/models"
)

type dialect int

const (
	dialectDuckDB dialect = iota
	dialectPostgres
)

// fetchedColumns are the optional columns every backend query produces.
var fetchedColumns = []string{
	models.ColumnCompanyName,
	models.ColumnCampaigns,
	models.ColumnCustomers,
	models.ColumnState,
}

// buildFetchQuery renders the aggregation that produces the calls table:
// one row per company, state, year and month with distinct campaigns,
// customer count and call count. Calls before warehouse.MinYear and on or
// after warehouse.CutoffDate are excluded.
func buildFetchQuery(d dialect, callsTable, companiesTable string, warehouse config.WarehouseConfig) (string, []any, error) {
	if !config.ValidTableName(callsTable) || !config.ValidTableName(companiesTable) {
		return "", nil, fmt.Errorf("invalid table name %q or %q", callsTable, companiesTable)
	}

	placeholder := func(n int) string {
		if d == dialectPostgres {
			return fmt.Sprintf("$%d", n)
		}
		return "?"
	}

	textCast := "CAST(%s AS VARCHAR)"
	if d == dialectPostgres {
		textCast = "CAST(%s AS TEXT)"
	}

	var where []string
	var args []any

	args = append(args, warehouse.MinYear)
	where = append(where, fmt.Sprintf("EXTRACT(YEAR FROM ic.created_on) >= %s", placeholder(len(args))))

	if warehouse.CutoffDate != "" {
		cutoff, err := time.Parse(time.DateOnly, warehouse.CutoffDate)
		if err != nil {
			return "", nil, fmt.Errorf("invalid cutoff date %q: %w", warehouse.CutoffDate, err)
		}
		args = append(args, cutoff)
		where = append(where, fmt.Sprintf("ic.created_on < %s", placeholder(len(args))))
	}

	companyID := fmt.Sprintf(textCast, "ic.company_id")
	joinKey := fmt.Sprintf(textCast, "c.company_id")

	var b strings.Builder
	fmt.Fprintf(&b, `SELECT
	%s AS company_id,
	c.company_name AS company_name,
	COUNT(DISTINCT ic.campaign_id) AS campaigns,
	COUNT(ic.customer_id) AS customers,
	ic.location_state AS state,
	CAST(EXTRACT(YEAR FROM ic.created_on) AS INTEGER) AS year,
	CAST(EXTRACT(MONTH FROM ic.created_on) AS INTEGER) AS month,
	COUNT(ic.lead_call_id) AS calls
FROM %s ic
JOIN %s c ON %s = %s
WHERE %s
GROUP BY 1, 2, 5, 6, 7
ORDER BY 1, 6, 7, 5`,
		companyID, callsTable, companiesTable, joinKey, companyID, strings.Join(where, "\n  AND "))

	return b.String(), args, nil
}

// newCallRecord converts one aggregated row into a CallRecord.
func newCallRecord(companyID string, name *string, campaigns, customers int64, state *string, year, month int, calls int64) models.CallRecord {
	return models.CallRecord{
		CompanyID:   strings.TrimSpace(companyID),
		CompanyName: name,
		Year:        year,
		Month:       month,
		Calls:       float64(calls),
		Campaigns:   &campaigns,
		Customers:   &customers,
		State:       state,
	}
}
