// ABOUTME: SQLite backend storing the flat key space in a single kv table.
// ABOUTME: Uses modernc.org/sqlite (pure Go, no CGO required).
package kv

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// SQLiteBackend stores the key space in a single-file SQLite database.
type SQLiteBackend struct {
	db *sql.DB
}

// OpenSQLite opens or creates a SQLite kv database at the given path.
func OpenSQLite(dbPath string) (*SQLiteBackend, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return &SQLiteBackend{db: db}, nil
}

// Get returns the value at key.
func (b *SQLiteBackend) Get(key string) ([]byte, bool, error) {
	var value string
	err := b.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

// Set stores a value, replacing any existing one.
func (b *SQLiteBackend) Set(key string, value []byte) error {
	_, err := b.db.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, string(value))
	return err
}

// Delete removes a key. Deleting an absent key is not an error.
func (b *SQLiteBackend) Delete(key string) error {
	_, err := b.db.Exec("DELETE FROM kv WHERE key = ?", key)
	return err
}

// Keys returns all keys in the store.
func (b *SQLiteBackend) Keys() ([]string, error) {
	rows, err := b.db.Query("SELECT key FROM kv ORDER BY key")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Close closes the database connection.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}
