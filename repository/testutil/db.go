package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"cardinal/database"
)

// TestDatabase wraps a migrated store backed by a throwaway file
type TestDatabase struct {
	DB   *database.DB
	Path string
}

// SetupTestDatabase opens a fresh store under t.TempDir() and brings it to
// the latest schema. The connection is closed when the test finishes.
func SetupTestDatabase(t *testing.T) *TestDatabase {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cardinal.db")
	db, err := database.NewConnection(context.Background(), path)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	if err := database.RunMigrations(path); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return &TestDatabase{DB: db, Path: path}
}
