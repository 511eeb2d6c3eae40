package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const quotesSchema = `
CREATE TABLE IF NOT EXISTS quotes (
	seq              INTEGER PRIMARY KEY AUTOINCREMENT,
	id               TEXT NOT NULL UNIQUE,
	reference_number TEXT NOT NULL,
	items            TEXT NOT NULL,
	customer         TEXT NOT NULL,
	subtotal         REAL NOT NULL,
	total            REAL NOT NULL,
	currency         TEXT NOT NULL,
	status           TEXT NOT NULL,
	comments         TEXT NOT NULL DEFAULT '',
	created_at       TEXT NOT NULL,
	expires_at       TEXT NOT NULL,
	last_modified_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_quotes_reference_number ON quotes (reference_number);
`

// OpenSQLite opens a SQLite database and configures pragmas.
//
// The pool is limited to one connection: SQLite serializes writers anyway and
// an in-memory database exists per connection.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	return db, nil
}

// EnsureSchema creates the quotes table when missing.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(quotesSchema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
