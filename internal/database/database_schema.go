// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package database

import (
	"context"
	"fmt"
	"time"
)

const (
	callsTableName     = "inbound_calls"
	companiesTableName = "companies"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS companies (
		company_id   VARCHAR PRIMARY KEY,
		company_name VARCHAR
	)`,
	`CREATE TABLE IF NOT EXISTS inbound_calls (
		lead_call_id   VARCHAR PRIMARY KEY,
		company_id     VARCHAR NOT NULL,
		campaign_id    VARCHAR,
		customer_id    VARCHAR,
		location_state VARCHAR,
		created_on     TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_inbound_calls_company ON inbound_calls(company_id)`,
	`CREATE INDEX IF NOT EXISTS idx_inbound_calls_created_on ON inbound_calls(created_on)`,
}

// initialize creates the warehouse tables and indexes.
func (db *DB) initialize() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, stmt := range schemaStatements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

// InboundCall is one raw call row as stored in the warehouse.
type InboundCall struct {
	LeadCallID string
	CompanyID  string
	CampaignID string // empty stores NULL
	CustomerID string // empty stores NULL
	State      string // empty stores NULL
	CreatedOn  time.Time
}

// UpsertCompany inserts or renames a company.
func (db *DB) UpsertCompany(ctx context.Context, companyID, name string) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO companies (company_id, company_name) VALUES (?, ?)
		ON CONFLICT (company_id) DO UPDATE SET company_name = excluded.company_name`,
		companyID, nullIfEmpty(name))
	if err != nil {
		return fmt.Errorf("failed to upsert company %s: %w", companyID, err)
	}
	return nil
}

// InsertCalls stores calls in a single transaction.
func (db *DB) InsertCalls(ctx context.Context, calls []InboundCall) error {
	if len(calls) == 0 {
		return nil
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO inbound_calls (lead_call_id, company_id, campaign_id, customer_id, location_state, created_on)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer closeWithLog(stmt, nil, "insert statement")

	for i := range calls {
		c := &calls[i]
		if _, err := stmt.ExecContext(ctx, c.LeadCallID, c.CompanyID,
			nullIfEmpty(c.CampaignID), nullIfEmpty(c.CustomerID), nullIfEmpty(c.State), c.CreatedOn); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert call %s: %w", c.LeadCallID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit calls: %w", err)
	}
	return nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
