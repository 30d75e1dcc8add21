// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package models

import "time"

// Optional columns a data source may or may not produce.
const (
	ColumnCompanyName = "company_name"
	ColumnCampaigns   = "campaigns"
	ColumnCustomers   = "customers"
	ColumnState       = "state"
)

// CallRecord is one aggregated warehouse row: calls for a company in a
// (year, month), optionally split by state.
//
// Optional fields are nil when the source did not supply a value.
type CallRecord struct {
	CompanyID   string  `json:"company_id"`
	CompanyName *string `json:"company_name,omitempty"`
	Year        int     `json:"year"`
	Month       int     `json:"month"` // 1-12
	Calls       float64 `json:"calls"`
	Campaigns   *int64  `json:"campaigns,omitempty"`
	Customers   *int64  `json:"customers,omitempty"`
	State       *string `json:"state,omitempty"`
}

// CallsTable is an immutable snapshot of every call record fetched from the
// warehouse. It is replaced wholesale on refresh and never mutated.
type CallsTable struct {
	Records   []CallRecord
	Columns   map[string]bool // optional columns present in the source
	FetchedAt time.Time
}

// NewCallsTable builds a table over records declaring the given optional columns.
func NewCallsTable(records []CallRecord, fetchedAt time.Time, columns ...string) *CallsTable {
	cols := make(map[string]bool, len(columns))
	for _, c := range columns {
		cols[c] = true
	}
	return &CallsTable{Records: records, Columns: cols, FetchedAt: fetchedAt}
}

// HasColumn reports whether the source produced the named optional column.
func (t *CallsTable) HasColumn(name string) bool {
	return t != nil && t.Columns[name]
}

// Len returns the number of records, treating a nil table as empty.
func (t *CallsTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}
