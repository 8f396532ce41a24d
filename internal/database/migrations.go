package database

import (
	"database/sql"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS people (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		avatar_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS groups (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		currency_code TEXT NOT NULL DEFAULT 'INR',
		tag TEXT,
		start_date TEXT,
		end_date TEXT,
		archived BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS group_members (
		group_id TEXT NOT NULL REFERENCES groups(id) ON DELETE CASCADE,
		person_id TEXT NOT NULL REFERENCES people(id) ON DELETE CASCADE,
		added_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (group_id, person_id)
	)`,
	`CREATE TABLE IF NOT EXISTS payment_sources (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL REFERENCES people(id) ON DELETE CASCADE,
		label TEXT NOT NULL,
		type TEXT NOT NULL,
		card_issuer TEXT,
		card_last4 TEXT,
		upi_app TEXT,
		upi_id TEXT,
		archived BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		group_id TEXT NOT NULL REFERENCES groups(id) ON DELETE CASCADE,
		description TEXT NOT NULL,
		amount DOUBLE PRECISION NOT NULL,
		paid_by_id TEXT NOT NULL REFERENCES people(id),
		date TEXT NOT NULL,
		tag TEXT NOT NULL DEFAULT '',
		payment_source_id TEXT REFERENCES payment_sources(id),
		comment TEXT,
		type TEXT NOT NULL,
		split_mode TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS transaction_splits (
		transaction_id TEXT NOT NULL REFERENCES transactions(id) ON DELETE CASCADE,
		person_id TEXT NOT NULL REFERENCES people(id),
		value DOUBLE PRECISION NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (transaction_id, person_id)
	)`,
	`CREATE TABLE IF NOT EXISTS transaction_payers (
		transaction_id TEXT NOT NULL REFERENCES transactions(id) ON DELETE CASCADE,
		person_id TEXT NOT NULL REFERENCES people(id),
		amount DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (transaction_id, person_id)
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id TEXT PRIMARY KEY,
		recipient_id TEXT NOT NULL REFERENCES people(id) ON DELETE CASCADE,
		message TEXT NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT false,
		related_entity_type TEXT,
		related_entity_id TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_group_id ON transactions(group_id)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_payment_source_id ON transactions(payment_source_id)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_recipient_id ON notifications(recipient_id)`,
}

// Migrate creates the schema if it does not exist yet. Statements are
// idempotent, so running it on every startup is safe.
func Migrate(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
