// Package sqlite implements the persistence repositories on top of SQLite
// using database/sql and the pure Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/example/room-booking/internal/persistence"
	_ "modernc.org/sqlite"
)

// Store owns the database handle shared by the room and booking repositories.
type Store struct {
	db *sql.DB
}

// Open establishes a connection pool for the given DSN. SQLite serializes
// writers, so the pool is capped at a single connection.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	return &Store{db: db}, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ping tests the database connection.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("sqlite store not configured")
	}
	return s.db.PingContext(ctx)
}

const schema = `
CREATE TABLE IF NOT EXISTS rooms (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT    NOT NULL,
	seats      INTEGER NOT NULL,
	amenities  TEXT    NOT NULL,
	price      REAL    NOT NULL,
	created_at TEXT    NOT NULL
);

CREATE TABLE IF NOT EXISTS bookings (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	customer_name TEXT    NOT NULL,
	date          TEXT    NOT NULL,
	start_time    TEXT    NOT NULL,
	end_time      TEXT    NOT NULL,
	room_id       INTEGER NOT NULL REFERENCES rooms(id),
	created_at    TEXT    NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_bookings_room_date ON bookings(room_id, date);

CREATE INDEX IF NOT EXISTS idx_bookings_customer ON bookings(customer_name);
`

// Migrate applies the schema. Statements are idempotent so repeated startups
// are safe.
func (s *Store) Migrate(ctx context.Context) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("sqlite store not configured")
	}
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// mapError converts driver errors into persistence layer errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if err == sql.ErrNoRows {
		return persistence.ErrNotFound
	}
	msg := err.Error()
	if strings.Contains(msg, "FOREIGN KEY constraint failed") || strings.Contains(msg, "foreign key constraint") {
		return persistence.ErrNotFound
	}
	return err
}
