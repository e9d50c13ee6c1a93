package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_InMemory(t *testing.T) {
	ctx := context.Background()

	client, err := NewClient(ctx, Config{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	// Migrations created the tables; a basic insert round-trips.
	row, err := client.ResearchSession.Create().
		SetID("sess-db-1").
		SetQuery("test query").
		SetStatus("idle").
		SetCreatedAt("2026-08-26T10:00:00.000000").
		SetUpdatedAt("2026-08-26T10:00:00.000000").
		Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sess-db-1", row.ID)

	require.NoError(t, client.DB().Ping())
}

func TestNewClient_CreatesParentDirectory(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "data", "research.db")

	client, err := NewClient(ctx, Config{Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	assert.FileExists(t, path)
}

func TestNewClient_MigrationsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "research.db")

	client, err := NewClient(ctx, Config{Path: path})
	require.NoError(t, err)
	require.NoError(t, client.Close())

	// Reopening the same file applies no new migrations and must not fail.
	client, err = NewClient(ctx, Config{Path: path})
	require.NoError(t, err)
	require.NoError(t, client.Close())
}

func TestBuildDSN(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		dsn, err := buildDSN(":memory:")
		require.NoError(t, err)
		assert.Equal(t, "file::memory:?_fk=1&cache=shared", dsn)
	})

	t.Run("file path enables WAL and foreign keys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "research.db")
		dsn, err := buildDSN(path)
		require.NoError(t, err)
		assert.Contains(t, dsn, "_journal_mode=WAL")
		assert.Contains(t, dsn, "_fk=1")
		assert.Contains(t, dsn, "_busy_timeout=5000")
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := buildDSN("")
		require.Error(t, err)
	})
}

func TestHasEmbeddedMigrations(t *testing.T) {
	ok, err := hasEmbeddedMigrations()
	require.NoError(t, err)
	assert.True(t, ok)
}
