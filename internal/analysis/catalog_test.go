// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package analysis

import (
	"reflect"
	"testing"
	"time"

	"github.com/tomtom215/inflection/internal/models"
)

func TestListCompanies(t *testing.T) {
	t.Parallel()

	records := []models.CallRecord{
		{CompanyID: "2", CompanyName: strPtr("Zeta Roofing"), Year: 2024, Month: 1, Calls: 1},
		{CompanyID: "1", CompanyName: strPtr("Acme Plumbing"), Year: 2024, Month: 1, Calls: 1},
		{CompanyID: "1", CompanyName: strPtr("Acme Plumbing"), Year: 2024, Month: 2, Calls: 1},
		{CompanyID: "3", CompanyName: strPtr("Acme Plumbing"), Year: 2024, Month: 1, Calls: 1},
		{CompanyID: "4", Year: 2024, Month: 1, Calls: 1},
	}
	table := models.NewCallsTable(records, time.Now(), models.ColumnCompanyName)

	got := ListCompanies(table)
	want := []models.CompanySummary{
		{CompanyID: "4", CompanyName: "4"},
		{CompanyID: "1", CompanyName: "Acme Plumbing"},
		{CompanyID: "3", CompanyName: "Acme Plumbing"},
		{CompanyID: "2", CompanyName: "Zeta Roofing"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListCompanies() = %+v, want %+v", got, want)
	}
}

func TestListCompaniesWithoutNameColumn(t *testing.T) {
	t.Parallel()

	table := models.NewCallsTable([]models.CallRecord{
		record("b", 2024, 1, 1),
		record("a", 2024, 1, 1),
		record("b", 2024, 2, 1),
	}, time.Now())

	got := ListCompanies(table)
	want := []models.CompanySummary{{CompanyID: "a", CompanyName: "a"}, {CompanyID: "b", CompanyName: "b"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListCompanies() = %+v, want %+v", got, want)
	}
}

func TestListCompaniesEmpty(t *testing.T) {
	t.Parallel()

	if got := ListCompanies(nil); got == nil || len(got) != 0 {
		t.Errorf("ListCompanies(nil) = %#v, want empty slice", got)
	}
}
