package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// Store keys, carried over from the original localStorage layout so an
// exported vault stays readable by key name.
const (
	keyLinks       = "app-vault-links"
	keyDocuments   = "app-vault-pdfs"
	keyCredentials = "app-vault-passwords"
	keyTasks       = "app-vault-tasks"
	keyStreak      = "app-vault-streak"
	keyDailyQuote  = "app-vault-daily-quote"
	keyQuoteDate   = "app-vault-quote-date"
	keyProfile     = "app-vault-profile"
)

// ErrNotFound indicates the record does not exist in its collection
var ErrNotFound = errors.New("record not found")

// getValue reads the raw JSON string stored under key.
// A missing key is not an error; ok is false.
func getValue(ctx context.Context, db *sql.DB, key string) (value string, ok bool, err error) {
	err = db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

// setValue writes the raw JSON string under key, replacing any previous value
func setValue(ctx context.Context, db *sql.DB, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// loadJSON unmarshals the value stored under key into dest.
// Missing keys and malformed stored data both leave dest at its zero
// value: a corrupt collection degrades to empty, never to a fatal error.
func loadJSON(ctx context.Context, db *sql.DB, key string, dest any) error {
	raw, ok, err := getValue(ctx, db, key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		slog.Warn("malformed stored value, treating as empty", "key", key, "error", err)
		return nil
	}
	return nil
}

// saveJSON marshals v and stores it wholesale under key
func saveJSON(ctx context.Context, db *sql.DB, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %q: %w", key, err)
	}
	return setValue(ctx, db, key, string(raw))
}
