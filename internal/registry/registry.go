// Package registry manages the default, custom, and suggested category
// sets on top of the persisted store: first-run seeding, suggestion
// promotion, the default-category edit guard, and total color resolution.
package registry

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/centsible/centsible/internal/common"
	"github.com/centsible/centsible/internal/model"
	"github.com/centsible/centsible/internal/storage"
)

// Registry exposes bucket-oriented category management.
type Registry struct {
	store *storage.Store
}

// New creates a registry backed by the given store.
func New(store *storage.Store) *Registry {
	return &Registry{store: store}
}

// CategoriesByBucket returns a snapshot of one bucket for a type.
func (r *Registry) CategoriesByBucket(ctx context.Context, txnType model.TransactionType, bucket model.Bucket) ([]model.Category, error) {
	return r.store.ListCategoriesByBucket(ctx, txnType, bucket)
}

// WatchBucket returns the live view of one bucket for a type.
func (r *Registry) WatchBucket(ctx context.Context, txnType model.TransactionType, bucket model.Bucket) (<-chan []model.Category, func(), error) {
	return r.store.WatchCategories(ctx, txnType, bucket)
}

// SeedDefaults seeds the built-in sets for both transaction types. The
// two types are independent and are seeded concurrently.
func (r *Registry) SeedDefaults(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, txnType := range []model.TransactionType{model.TypeExpense, model.TypeIncome} {
		g.Go(func() error {
			return r.SeedDefaultsIfAbsent(ctx, txnType)
		})
	}
	return g.Wait()
}

// SeedDefaultsIfAbsent inserts the built-in default and suggested sets
// for a type, each guarded by its persisted row count so repeated calls
// are no-ops. The guard is the stored data itself, never process state.
func (r *Registry) SeedDefaultsIfAbsent(ctx context.Context, txnType model.TransactionType) error {
	defaults, err := r.store.CountCategoriesByBucket(ctx, txnType, model.BucketDefault)
	if err != nil {
		return fmt.Errorf("failed to check default categories: %w", err)
	}
	if defaults == 0 {
		for _, cat := range builtinDefaults(txnType) {
			if err := r.store.AddCategory(ctx, &cat); err != nil {
				return fmt.Errorf("failed to seed default category %q: %w", cat.Name, err)
			}
		}
		slog.Info("seeded default categories", "type", txnType)
	}

	suggested, err := r.store.CountCategoriesByBucket(ctx, txnType, model.BucketSuggested)
	if err != nil {
		return fmt.Errorf("failed to check suggested categories: %w", err)
	}
	if suggested == 0 {
		for _, cat := range builtinSuggestions(txnType) {
			if err := r.store.AddCategory(ctx, &cat); err != nil {
				return fmt.Errorf("failed to seed suggested category %q: %w", cat.Name, err)
			}
		}
		slog.Info("seeded suggested categories", "type", txnType)
	}

	return nil
}

// PromoteSuggested copies a suggested category into the custom bucket:
// fresh id, fresh creation timestamp, both bucket flags cleared. The
// original suggestion stays offerable.
func (r *Registry) PromoteSuggested(ctx context.Context, cat *model.Category) (*model.Category, error) {
	if cat == nil {
		return nil, fmt.Errorf("%w: category", common.ErrNotFound)
	}
	if !cat.IsSuggested {
		return nil, fmt.Errorf("%w: %q", common.ErrNotSuggested, cat.Name)
	}

	promoted := model.Category{
		Name:     cat.Name,
		Emoji:    cat.Emoji,
		ColorHex: cat.ColorHex,
		Type:     cat.Type,
	}
	if err := r.store.AddCategory(ctx, &promoted); err != nil {
		return nil, fmt.Errorf("failed to promote category %q: %w", cat.Name, err)
	}

	slog.Info("promoted suggested category", "name", promoted.Name, "id", promoted.ID)
	return &promoted, nil
}

// AddCustom inserts a user-created category.
func (r *Registry) AddCustom(ctx context.Context, cat *model.Category) error {
	cat.IsDefault = false
	cat.IsSuggested = false
	return r.store.AddCategory(ctx, cat)
}

// UpdateCategory edits a category. Default categories are immutable.
func (r *Registry) UpdateCategory(ctx context.Context, cat *model.Category) error {
	if cat == nil {
		return fmt.Errorf("%w: category", common.ErrNotFound)
	}

	existing, err := r.store.GetCategoryByID(ctx, cat.ID)
	if err != nil {
		return err
	}
	if existing.IsDefault {
		return fmt.Errorf("%w: %q", common.ErrDefaultCategory, existing.Name)
	}

	return r.store.UpdateCategory(ctx, cat)
}

// DeleteCategory removes a category. Default categories are immutable;
// transactions referencing the deleted name keep it as a dangling
// reference rendered with fallback styling.
func (r *Registry) DeleteCategory(ctx context.Context, id int64) error {
	existing, err := r.store.GetCategoryByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.IsDefault {
		return fmt.Errorf("%w: %q", common.ErrDefaultCategory, existing.Name)
	}

	return r.store.DeleteCategory(ctx, id)
}
