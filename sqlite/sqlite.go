// Package sqlite provides SQLite-based storage implementations for ledger services.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	// This also keeps a ":memory:" database alive across queries.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	// WAL mode is not supported for in-memory databases.
	if db.path != ":memory:" {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	for _, p := range pragmas {
		if _, err := conn.Exec(p); err != nil {
			conn.Close()
			return fmt.Errorf("failed to run %q: %w", p, err)
		}
	}

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// BeginTx starts a transaction.
func (db *DB) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, nil)
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the database tables if they don't exist.
// Amounts are stored as decimal text to keep them exact.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS statements (
			id TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			content_hash TEXT NOT NULL,
			period_start TEXT NOT NULL,
			period_end TEXT NOT NULL,
			raw_text TEXT NOT NULL DEFAULT '',
			imported_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS rows (
			statement_id TEXT NOT NULL REFERENCES statements(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			fiscal_year INTEGER NOT NULL,
			beginning_tax_balance TEXT NOT NULL,
			tax_adjustment TEXT NOT NULL,
			base_tax_collected TEXT NOT NULL,
			reversals TEXT NOT NULL,
			net_base_tax_collected TEXT NOT NULL,
			percent_collected TEXT NOT NULL,
			ending_tax_balance TEXT NOT NULL,
			property_and_insurance_collected TEXT NOT NULL,
			property_and_insurance_reversals TEXT NOT NULL,
			local_real_property_collected TEXT NOT NULL,
			other_penalty_collected TEXT NOT NULL,
			total_distributed TEXT NOT NULL,
			PRIMARY KEY (statement_id, position)
		);

		CREATE INDEX IF NOT EXISTS idx_statements_content_hash ON statements(content_hash);
		CREATE INDEX IF NOT EXISTS idx_statements_source ON statements(source);
	`

	_, err := db.db.Exec(schema)
	return err
}
