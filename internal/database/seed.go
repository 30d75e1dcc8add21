// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package database

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/inflection/internal/logging"
)

// mockSeed keeps demo data stable across restarts and test runs.
const mockSeed = 20150101

type mockCompany struct {
	id      string
	name    string
	base    float64     // average calls per month
	profile [12]float64 // monthly multiplier, Jan..Dec
	states  []string
}

var mockCompanies = []mockCompany{
	{
		id:      "1001",
		name:    "Summit HVAC",
		base:    40,
		profile: [12]float64{0.6, 0.5, 0.7, 0.9, 1.3, 1.8, 2.0, 1.7, 1.0, 0.7, 0.8, 1.1},
		states:  []string{"TX", "OK"},
	},
	{
		id:      "1002",
		name:    "Harbor Tax Group",
		base:    30,
		profile: [12]float64{1.6, 2.2, 2.6, 2.4, 0.7, 0.5, 0.4, 0.5, 0.6, 0.8, 0.6, 0.5},
		states:  []string{"CA"},
	},
	{
		id:      "1003",
		name:    "Evergreen Landscaping",
		base:    25,
		profile: [12]float64{0.3, 0.4, 1.2, 1.9, 2.1, 1.6, 1.2, 1.1, 1.4, 1.0, 0.5, 0.3},
		states:  []string{"WA", "OR", "ID"},
	},
	{
		id:      "1004",
		name:    "Northpoint Retail",
		base:    35,
		profile: [12]float64{0.8, 0.7, 0.8, 0.9, 0.9, 0.8, 0.8, 1.0, 0.9, 1.1, 1.8, 2.3},
		states:  []string{"NY", "NJ"},
	},
}

// SeedMockData fills an empty warehouse with deterministic seasonal call
// data for demos. It does nothing when calls already exist.
func (db *DB) SeedMockData(ctx context.Context) error {
	existing, err := db.CountCalls(ctx)
	if err != nil {
		return err
	}
	if existing > 0 {
		logging.Info().Int64("calls", existing).Msg("Warehouse already has data, skipping mock seed")
		return nil
	}

	rng := rand.New(rand.NewSource(mockSeed)) //nolint:gosec // demo data, not security sensitive

	firstYear := db.warehouse.MinYear
	if firstYear <= 0 {
		firstYear = 2015
	}
	lastYear := firstYear + 5

	total := 0
	for _, company := range mockCompanies {
		if err := db.UpsertCompany(ctx, company.id, company.name); err != nil {
			return err
		}

		calls := mockCalls(rng, company, firstYear, lastYear)
		if err := db.InsertCalls(ctx, calls); err != nil {
			return fmt.Errorf("failed to seed calls for %s: %w", company.name, err)
		}
		total += len(calls)
	}

	logging.Info().
		Int("companies", len(mockCompanies)).
		Int("calls", total).
		Int("first_year", firstYear).
		Int("last_year", lastYear).
		Msg("Seeded warehouse with mock data")
	return nil
}

// mockCalls generates one company's calls for every month in [firstYear, lastYear].
func mockCalls(rng *rand.Rand, company mockCompany, firstYear, lastYear int) []InboundCall {
	var calls []InboundCall
	for year := firstYear; year <= lastYear; year++ {
		growth := 1 + 0.05*float64(year-firstYear)
		for m := 0; m < 12; m++ {
			jitter := 0.85 + 0.3*rng.Float64()
			n := int(company.base*company.profile[m]*growth*jitter + 0.5)

			for i := 0; i < n; i++ {
				day := 1 + rng.Intn(28)
				created := time.Date(year, time.Month(m+1), day, 8+rng.Intn(10), rng.Intn(60), 0, 0, time.UTC)
				calls = append(calls, InboundCall{
					LeadCallID: uuid.New().String(),
					CompanyID:  company.id,
					CampaignID: fmt.Sprintf("%s-c%d", company.id, 1+rng.Intn(3)),
					CustomerID: fmt.Sprintf("%s-u%d", company.id, rng.Intn(500)),
					State:      company.states[rng.Intn(len(company.states))],
					CreatedOn:  created,
				})
			}
		}
	}
	return calls
}
