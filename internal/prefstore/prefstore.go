// Package prefstore persists UI preferences across runs in a small SQLite
// database.
package prefstore

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/arenalens/arenalens/schema"
)

const themeKey = "theme"

// Store handles durable preference storage backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open initializes the preference store at the given path, creating the
// parent directory and the schema when missing.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create preference directory %q: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize preference store at %q: %w. Ensure the directory is writable", path, err)
	}
	// Limit SQLite to a single open connection to avoid "database is locked" errors
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open preference store at %q: %w", path, err)
	}

	query := `CREATE TABLE IF NOT EXISTS preferences (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(query); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create preferences table: %w", err)
	}

	return &Store{db: db}, nil
}

// Theme returns the persisted theme, falling back to the light default when
// no valid preference is stored.
func (s *Store) Theme() (schema.Theme, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, themeKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return schema.LightTheme, nil
	}
	if err != nil {
		return schema.LightTheme, fmt.Errorf("failed to read theme preference: %w", err)
	}

	theme := schema.Theme(value)
	if _, ok := schema.ValidThemes[theme]; !ok {
		// A corrupted value falls back rather than failing the command.
		return schema.LightTheme, nil
	}
	return theme, nil
}

// SetTheme persists the theme preference, replacing any previous value.
func (s *Store) SetTheme(theme schema.Theme) error {
	if _, ok := schema.ValidThemes[theme]; !ok {
		return fmt.Errorf("invalid theme %q: must be light or dark", theme)
	}
	query := `INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := s.db.Exec(query, themeKey, string(theme)); err != nil {
		return fmt.Errorf("failed to persist theme preference: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
