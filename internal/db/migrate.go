package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations is the ordered list of schema statements. Every statement is
// idempotent (CREATE ... IF NOT EXISTS or a tolerated ALTER) because the
// full list re-runs on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS coverage_status (
		id             TEXT PRIMARY KEY,
		is_covered     INTEGER NOT NULL DEFAULT 0,
		is_exempt      INTEGER NOT NULL DEFAULT 0,
		exemption_type TEXT NOT NULL DEFAULT 'none'
		               CHECK(exemption_type IN ('none','qualified','commercial')),
		outcome_label  TEXT NOT NULL DEFAULT '',
		annual_sales   TEXT NOT NULL DEFAULT '',
		provisional    INTEGER NOT NULL DEFAULT 0,
		details        TEXT NOT NULL DEFAULT '{}',
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS records (
		id         TEXT PRIMARY KEY,
		type       TEXT NOT NULL
		           CHECK(type IN ('training','soil','water','harvest','plan','cleaning')),
		title      TEXT NOT NULL,
		date       TEXT NOT NULL,
		data       TEXT NOT NULL DEFAULT '{}',
		notes      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_records_type ON records(type)`,
	`CREATE INDEX IF NOT EXISTS idx_records_date ON records(date)`,

	`CREATE TABLE IF NOT EXISTS checklist_items (
		id         TEXT PRIMARY KEY,
		section    TEXT NOT NULL,
		title      TEXT NOT NULL,
		done       INTEGER NOT NULL DEFAULT 0,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_checklist_section ON checklist_items(section)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate re-applied ALTER TABLE statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
