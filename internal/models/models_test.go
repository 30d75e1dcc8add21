// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package models

import (
	"testing"
	"time"
)

func TestCallsTableColumns(t *testing.T) {
	t.Parallel()

	table := NewCallsTable(nil, time.Now(), ColumnCompanyName, ColumnState)

	if !table.HasColumn(ColumnCompanyName) || !table.HasColumn(ColumnState) {
		t.Error("expected declared columns to be present")
	}
	if table.HasColumn(ColumnCampaigns) {
		t.Error("campaigns was not declared")
	}
	if table.Len() != 0 {
		t.Errorf("Len() = %d, want 0", table.Len())
	}

	var nilTable *CallsTable
	if nilTable.HasColumn(ColumnState) || nilTable.Len() != 0 {
		t.Error("nil table should behave as empty")
	}
}

func TestAnalysisSummaryIsEmpty(t *testing.T) {
	t.Parallel()

	var nilSummary *AnalysisSummary
	if !nilSummary.IsEmpty() {
		t.Error("nil summary should be empty")
	}
	if !(&AnalysisSummary{}).IsEmpty() {
		t.Error("zero summary should be empty")
	}
	n := int64(3)
	if (&AnalysisSummary{Campaigns: &n}).IsEmpty() {
		t.Error("summary with campaigns should not be empty")
	}
	if (&AnalysisSummary{States: []string{"TX"}}).IsEmpty() {
		t.Error("summary with states should not be empty")
	}
}
