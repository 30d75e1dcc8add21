// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package analysis

import (
	"math/rand"
	"testing"
	"time"

	"github.com/tomtom215/inflection/internal/models"
)

func TestBuildMonthlySeriesPercentagesSumTo100(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		var records []models.CallRecord
		for year := 2019; year <= 2021; year++ {
			for month := 1; month <= 12; month++ {
				if rng.Intn(4) == 0 {
					continue
				}
				records = append(records, record("A", year, month, float64(rng.Intn(500))))
			}
		}
		records = append(records, record("A", 2022, 1+rng.Intn(12), 1))
		table := models.NewCallsTable(records, time.Now())

		s, err := BuildMonthlySeries(table, "A")
		if err != nil {
			t.Fatalf("trial %d: unexpected error %v", trial, err)
		}
		if s.Total <= 0 {
			t.Fatalf("trial %d: expected positive total", trial)
		}
		if got := sum(s.Percentages[:]); !almostEqual(got, 100, 1e-9) {
			t.Fatalf("trial %d: percentages sum to %v", trial, got)
		}
	}
}

func TestBuildMonthlySeriesZeroTotal(t *testing.T) {
	t.Parallel()

	table := monthlyTable("Z", make([]float64, 12))
	s, err := BuildMonthlySeries(table, "Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for m, p := range s.Percentages {
		if p != 0 {
			t.Errorf("month %d percentage = %v, want 0", m+1, p)
		}
	}
}

func TestBuildMonthlySeriesZeroFillsAndSums(t *testing.T) {
	t.Parallel()

	table := models.NewCallsTable([]models.CallRecord{
		record("7", 2023, 3, 10),
		record("7", 2024, 3, 30),
		record(" 7 ", 2024, 6, 60),
		record("8", 2024, 6, 1000),
	}, time.Now())

	s, err := BuildMonthlySeries(table, "7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Total != 100 {
		t.Errorf("Total = %v, want 100", s.Total)
	}
	if s.Calls[2] != 40 || s.Calls[5] != 60 {
		t.Errorf("Calls = %v", s.Calls)
	}
	if s.Calls[0] != 0 || s.Percentages[0] != 0 {
		t.Error("missing months should be zero-filled")
	}
	if !almostEqual(s.Percentages[2], 40, epsilon) || !almostEqual(s.Percentages[5], 60, epsilon) {
		t.Errorf("Percentages = %v", s.Percentages)
	}
}

func TestBuildMonthlySeriesNotFound(t *testing.T) {
	t.Parallel()

	table := monthlyTable("A", []float64{1, 2, 3})

	if _, err := BuildMonthlySeries(table, "B"); KindOf(err) != KindNotFound {
		t.Errorf("expected NotFound for unknown company, got %v", err)
	}
	if _, err := BuildMonthlySeries(models.NewCallsTable(nil, time.Now()), "A"); KindOf(err) != KindNotFound {
		t.Errorf("expected NotFound on empty table, got %v", err)
	}
	if _, err := BuildMonthlySeries(nil, "A"); KindOf(err) != KindNotFound {
		t.Errorf("expected NotFound on nil table, got %v", err)
	}
	if _, err := BuildMonthlySeries(table, "A"); err != nil {
		t.Errorf("expected no error for known company, got %v", err)
	}
}

func TestBuildAnnualTablePercentages(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	var records []models.CallRecord
	for year := 2016; year <= 2020; year++ {
		for month := 1; month <= 12; month++ {
			records = append(records, record("A", year, month, float64(rng.Intn(1000))))
		}
	}
	// A year with no calls at all.
	records = append(records, record("A", 2021, 5, 0))
	table := models.NewCallsTable(records, time.Now())

	annual, err := BuildAnnualTable(table, "A", ModePercentages)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantYears := []int{2016, 2017, 2018, 2019, 2020, 2021}
	if !equalInts(annual.Years, wantYears) {
		t.Fatalf("Years = %v, want %v", annual.Years, wantYears)
	}
	for _, year := range wantYears[:5] {
		row := annual.Rows[year]
		if got := sum(row[:]); !almostEqual(got, 100, 1e-9) {
			t.Errorf("year %d sums to %v", year, got)
		}
	}
	if row := annual.Rows[2021]; sum(row[:]) != 0 {
		t.Errorf("zero-total year should be all zero, got %v", row)
	}
}

func TestBuildAnnualTableWithinYearDenominator(t *testing.T) {
	t.Parallel()

	table := models.NewCallsTable([]models.CallRecord{
		record("A", 2023, 1, 10),
		record("A", 2023, 2, 30),
		record("A", 2024, 1, 1000),
	}, time.Now())

	annual, err := BuildAnnualTable(table, "A", ModePercentages)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := annual.Rows[2023][0]; !almostEqual(got, 25, epsilon) {
		t.Errorf("2023 January = %v, want 25", got)
	}
	if got := annual.Rows[2024][0]; !almostEqual(got, 100, epsilon) {
		t.Errorf("2024 January = %v, want 100", got)
	}
}

func TestBuildAnnualTableAbsolute(t *testing.T) {
	t.Parallel()

	table := models.NewCallsTable([]models.CallRecord{
		record("A", 2023, 1, 10.5),
		record("A", 2023, 2, 3.2),
		record("A", 2023, 2, 1.1),
	}, time.Now())

	annual, err := BuildAnnualTable(table, "A", ModeAbsolute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row := annual.Rows[2023]
	if row[0] != 11 || row[1] != 4 || row[2] != 0 {
		t.Errorf("absolute row = %v, want [11 4 0 ...]", row)
	}
	if annual.Mode != ModeAbsolute {
		t.Errorf("Mode = %q", annual.Mode)
	}
}

func TestBuildAnnualTableNotFound(t *testing.T) {
	t.Parallel()

	if _, err := BuildAnnualTable(monthlyTable("A", []float64{1}), "nope", ModeAbsolute); KindOf(err) != KindNotFound {
		t.Errorf("expected NotFound, got %v", err)
	}
}
