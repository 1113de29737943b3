// Package store persists the last emitted selection per source file
// and column. Persistence lives with the application, deliberately
// outside the filter component, which only ever sees encoded
// snapshots.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// schemaVersion is the latest schema version. Bump when adding
// migrations.
const schemaVersion = 1

// Saved is one persisted selection.
type Saved struct {
	Source    string
	Column    string
	Encoded   string
	UpdatedAt time.Time
}

type Store struct {
	db *sql.DB
}

// Open initializes the database at baseDir/facet.db, creating the
// directory and schema as needed. baseDir is a parameter so tests can
// point it at t.TempDir().
func Open(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	dbPath := filepath.Join(baseDir, "facet.db")
	dsn := dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func migrate(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if version < 1 {
		schema := `
		CREATE TABLE IF NOT EXISTS selections (
		  source     TEXT NOT NULL,
		  column_name TEXT NOT NULL,
		  encoded    TEXT NOT NULL,
		  updated_at TEXT NOT NULL,
		  PRIMARY KEY (source, column_name)
		);`
		if _, err := db.Exec(schema); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	if version != schemaVersion {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
			return fmt.Errorf("failed to set schema version: %w", err)
		}
	}
	return nil
}

// Put upserts the selection for (source, column).
func (s *Store) Put(source, column, encoded string) error {
	_, err := s.db.Exec(`
		INSERT INTO selections (source, column_name, encoded, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (source, column_name) DO UPDATE SET
		  encoded = excluded.encoded,
		  updated_at = excluded.updated_at`,
		source, column, encoded, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save selection: %w", err)
	}
	return nil
}

// Get returns the saved selection for (source, column). ok is false
// on a miss.
func (s *Store) Get(source, column string) (encoded string, ok bool, err error) {
	row := s.db.QueryRow(
		`SELECT encoded FROM selections WHERE source = ? AND column_name = ?`,
		source, column)
	switch err := row.Scan(&encoded); err {
	case nil:
		return encoded, true, nil
	case sql.ErrNoRows:
		return "", false, nil
	default:
		return "", false, fmt.Errorf("failed to load selection: %w", err)
	}
}

// Delete removes the saved selection for (source, column).
func (s *Store) Delete(source, column string) error {
	if _, err := s.db.Exec(
		`DELETE FROM selections WHERE source = ? AND column_name = ?`,
		source, column); err != nil {
		return fmt.Errorf("failed to delete selection: %w", err)
	}
	return nil
}

// Clear removes every saved selection and returns how many were
// deleted.
func (s *Store) Clear() (int64, error) {
	res, err := s.db.Exec(`DELETE FROM selections`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear selections: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// List returns all saved selections, most recently updated first.
func (s *Store) List() ([]Saved, error) {
	rows, err := s.db.Query(`
		SELECT source, column_name, encoded, updated_at
		FROM selections ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list selections: %w", err)
	}
	defer rows.Close()

	var out []Saved
	for rows.Next() {
		var sv Saved
		var ts string
		if err := rows.Scan(&sv.Source, &sv.Column, &sv.Encoded, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan selection: %w", err)
		}
		sv.UpdatedAt, _ = time.Parse(time.RFC3339, ts)
		out = append(out, sv)
	}
	return out, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}
