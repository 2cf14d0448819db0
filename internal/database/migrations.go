package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the key-value schema.
// Every collection is stored wholesale as a JSON string under its key,
// matching the original localStorage layout of the app.
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}
