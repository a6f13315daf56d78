// Package testutil provides shared test fixtures for the centsible project.
package testutil

import (
	"context"
	"testing"

	"github.com/centsible/centsible/internal/registry"
	"github.com/centsible/centsible/internal/storage"
)

// SetupTestDB creates a migrated in-memory store and registers cleanup.
func SetupTestDB(t *testing.T) *storage.Store {
	t.Helper()

	store, err := storage.NewStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

// SetupSeededDB creates a migrated in-memory store with the built-in
// default and suggested category sets already seeded.
func SetupSeededDB(t *testing.T) (*storage.Store, *registry.Registry) {
	t.Helper()

	store := SetupTestDB(t)
	reg := registry.New(store)
	if err := reg.SeedDefaults(context.Background()); err != nil {
		t.Fatalf("failed to seed categories: %v", err)
	}

	return store, reg
}
