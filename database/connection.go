package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// DB represents the file-backed store.
type DB struct {
	*sql.DB
	path  string
	fresh bool
}

// NewConnection opens the SQLite store at path, creating the file and its
// parent directory when missing. Whether the backing file existed before
// this call is remembered and reported by Fresh; that flag, not table
// emptiness, gates one-time guild provisioning.
func NewConnection(ctx context.Context, path string) (*DB, error) {
	_, statErr := os.Stat(path)
	fresh := os.IsNotExist(statErr)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", DSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection; this also creates the file for a fresh store
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db, path: path, fresh: fresh}, nil
}

// DSN builds the connection string for the store file. WAL journaling and a
// busy timeout let concurrent command handlers share the single file without
// spurious SQLITE_BUSY failures.
func DSN(path string) string {
	return fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on", path)
}

// Fresh reports whether the backing file did not exist prior to this
// process opening it.
func (db *DB) Fresh() bool {
	return db.fresh
}

// Path returns the location of the backing file.
func (db *DB) Path() string {
	return db.path
}

// Close closes the database connection pool
func (db *DB) Close() error {
	return db.DB.Close()
}
