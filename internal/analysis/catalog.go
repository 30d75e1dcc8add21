// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package analysis

import (
	"sort"
	"strings"

	"github.com/tomtom215/inflection/internal/models"
)

// ListCompanies returns the distinct (id, name) pairs of table sorted by name,
// then id. Rows without a name, or tables without a name column, use the id
// as the name.
func ListCompanies(table *models.CallsTable) []models.CompanySummary {
	companies := []models.CompanySummary{}
	if table.Len() == 0 {
		return companies
	}

	hasNames := table.HasColumn(models.ColumnCompanyName)
	seen := make(map[models.CompanySummary]struct{})

	for i := range table.Records {
		rec := &table.Records[i]
		id := NormalizeCompanyID(rec.CompanyID)
		if id == "" {
			continue
		}

		name := id
		if hasNames && rec.CompanyName != nil {
			if n := strings.TrimSpace(*rec.CompanyName); n != "" {
				name = n
			}
		}

		entry := models.CompanySummary{CompanyID: id, CompanyName: name}
		if _, ok := seen[entry]; ok {
			continue
		}
		seen[entry] = struct{}{}
		companies = append(companies, entry)
	}

	sort.Slice(companies, func(a, b int) bool {
		if companies[a].CompanyName != companies[b].CompanyName {
			return companies[a].CompanyName < companies[b].CompanyName
		}
		return companies[a].CompanyID < companies[b].CompanyID
	})
	return companies
}
