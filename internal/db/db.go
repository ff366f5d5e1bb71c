// Package db wraps the sqlite-backed identity store (spec.md §6 "A
// local relational database"). It is adapted from the teacher's pgx
// wrapper shape (DB struct, New/Close, a thin query surface) onto
// modernc.org/sqlite's pure-Go driver through database/sql, since this
// emulator ships as a single local file rather than a network
// database.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a sqlite connection for identity-store operations.
type DB struct {
	conn *sql.DB
}

// New opens (creating if absent) the sqlite database at path and
// verifies connectivity.
func New(ctx context.Context, path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	// The identity store serializes writes per row at the application
	// layer (spec.md §4.7, §5); a single connection keeps sqlite's
	// own single-writer semantics from adding a second serialization
	// point underneath it.
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("pinging database %s: %w", path, err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	return d.conn.Close()
}

// Conn returns the underlying *sql.DB (for goose migrations and
// repositories).
func (d *DB) Conn() *sql.DB {
	return d.conn
}
