// Package sqlite opens the embedded SQLite store used for localized content
// and creates its schema.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // pure Go driver registered as "sqlite"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// Open opens the database at path and applies connection pragmas
func Open(path string) (*sql.DB, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// every pooled connection to :memory: would see its own empty database
	if path == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("applying %q: %w", pragma, err)
		}
	}

	return db, nil
}

// EnsureSchema creates the localization tables if they don't exist
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS translations (
		entity_type TEXT NOT NULL,
		entity_id TEXT NOT NULL,
		lang TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		blocks TEXT NOT NULL DEFAULT '{}',
		updated_at TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (entity_type, entity_id, lang)
	);
	CREATE INDEX IF NOT EXISTS idx_translations_lang ON translations(entity_type, lang);

	CREATE TABLE IF NOT EXISTS enum_labels (
		enum_type TEXT NOT NULL,
		code TEXT NOT NULL,
		lang TEXT NOT NULL,
		label TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		synonyms TEXT NOT NULL DEFAULT '[]',
		PRIMARY KEY (enum_type, code, lang)
	);
	`

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// OpenMemory opens a fresh in-memory database with the schema applied
func OpenMemory(ctx context.Context) (*sql.DB, error) {
	db, err := Open(MemoryPath)
	if err != nil {
		return nil, err
	}
	if err := EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
