package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestStore creates a migrated in-memory store for package tests.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(":memory:")
	require.NoError(t, err)

	require.NoError(t, store.Migrate(context.Background()))

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

func TestMigrateIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	// A second run sees the schema already at the expected version.
	require.NoError(t, store.Migrate(context.Background()))
}

func TestNewStoreRejectsEmptyPath(t *testing.T) {
	_, err := NewStore("")
	require.ErrorIs(t, err, ErrEmptyString)
}
