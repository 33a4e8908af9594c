package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConnection_FreshDetection(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cardinal.db")

	db, err := NewConnection(ctx, path)
	require.NoError(t, err)
	assert.True(t, db.Fresh(), "first open against a missing file must report fresh")
	assert.Equal(t, path, db.Path())
	require.NoError(t, db.Close())

	// The file now exists, so a restart must not report fresh even though
	// no rows were ever written.
	db, err = NewConnection(ctx, path)
	require.NoError(t, err)
	defer db.Close()
	assert.False(t, db.Fresh(), "reopen against an existing file must not report fresh")
}

func TestNewConnection_CreatesParentDirectory(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "data", "cardinal.db")

	db, err := NewConnection(ctx, path)
	require.NoError(t, err)
	defer db.Close()
	assert.True(t, db.Fresh())
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cardinal.db")

	db, err := NewConnection(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(path))
	// Re-running against an already-migrated store is a no-op
	require.NoError(t, RunMigrations(path))

	for _, table := range []string{"guild_configs", "user_accounts"} {
		var name string
		err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type='table' AND name = ?", table).Scan(&name)
		require.NoError(t, err, "table %s not found", table)
	}
}
