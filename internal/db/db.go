// Package db holds the in-memory dataset table for the stress API. The
// merged Aadhaar dataset is loaded once at startup and never written again;
// every query method is a read.
package db

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by exact-match lookups that matched zero rows.
var ErrNotFound = errors.New("no matching record")

type DB struct {
	*sql.DB
}

// New opens an empty in-memory database with the stress_records schema.
// Callers populate it with LoadCSV before serving.
func New() (*DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}

	// A pooled connection would see a different (empty) memory database, so
	// pin the pool to the single connection that owns the table.
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS stress_records (
			state             TEXT NOT NULL,
			district          TEXT NOT NULL,
			date              TEXT NOT NULL,
			risk_score        DOUBLE,
			bio_ratio         DOUBLE,
			child_pressure    DOUBLE,
			elderly_pressure  DOUBLE
		);
		CREATE INDEX IF NOT EXISTS idx_stress_geo ON stress_records (state, district, date);
		CREATE INDEX IF NOT EXISTS idx_stress_date ON stress_records (date);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &DB{db}, nil
}

// CountRecords reports the number of loaded rows.
func (db *DB) CountRecords() (int, error) {
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM stress_records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return n, nil
}

// nullFloat converts a nullable column value to a pointer for API use.
func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
