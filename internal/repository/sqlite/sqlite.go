// Package sqlite implements the repository interfaces on SQLite.
//
// The upstream service kept its records in a hosted document store; an
// embedded database is the equivalent here — a single file (or ":memory:" in
// tests), no server to run, and the whole store rides along with the binary.
// modernc.org/sqlite is the pure-Go driver, so the build needs no C toolchain.
package sqlite

import (
	"database/sql"
	"fmt"

	// Side-effect import: registers the "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB connection pool and implements both repository interfaces.
type DB struct {
	conn *sql.DB
}

// New opens the database at dbPath and runs migrations.
// Use ":memory:" for a throwaway in-memory database in tests.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// Every pooled connection to ":memory:" opens its OWN empty database, so
	// the pool must be pinned to a single connection or a second checkout
	// would see none of the migrated schema.
	if dbPath == ":memory:" {
		conn.SetMaxOpenConns(1)
	}

	// sql.Open only creates the pool; Ping forces a real connection so a bad
	// path or permission problem surfaces here instead of on the first query.
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL lets reads proceed while a write is in flight — this is a web
	// server, so concurrent log queries during a create are the normal case.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the connection pool. Callers should defer this next to New.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates the schema. CREATE TABLE IF NOT EXISTS keeps this idempotent.
//
// Schema notes:
//   - usernames are deliberately NOT unique (upstream behaviour — duplicate
//     registrations are allowed and observable through the API).
//   - exercises carry a denormalized username column, not a user id foreign
//     key. Log queries filter on that one indexed column, no join.
//   - exercise date and duration are nullable: NULL is the storage form of the
//     invalid-input sentinels, and a NULL date never matches a range bound.
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id       TEXT PRIMARY KEY,
			username TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS exercises (
			id          TEXT PRIMARY KEY,
			username    TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			duration    REAL,
			date        TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_exercises_username ON exercises(username);
		CREATE INDEX IF NOT EXISTS idx_exercises_date ON exercises(date);
	`)
	if err != nil {
		return fmt.Errorf("creating exercises table: %w", err)
	}

	return nil
}
