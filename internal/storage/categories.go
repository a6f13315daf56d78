package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/centsible/centsible/internal/common"
	"github.com/centsible/centsible/internal/model"
)

const categoryColumns = `id, name, emoji, color_hex, type, is_default, is_suggested, created_at`

func scanCategory(scan func(...any) error) (model.Category, error) {
	var cat model.Category
	var typ string
	err := scan(&cat.ID, &cat.Name, &cat.Emoji, &cat.ColorHex, &typ, &cat.IsDefault, &cat.IsSuggested, &cat.CreatedAt)
	cat.Type = model.TransactionType(typ)
	return cat, err
}

// AddCategory persists a new category, assigning its id and, when unset,
// its creation timestamp. Live category watchers re-emit.
func (s *Store) AddCategory(ctx context.Context, cat *model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCategory(cat); err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if cat.CreatedAt == 0 {
		cat.CreatedAt = time.Now().UnixMilli()
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (name, emoji, color_hex, type, is_default, is_suggested, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		cat.Name, cat.Emoji, cat.ColorHex, string(cat.Type), cat.IsDefault, cat.IsSuggested, cat.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get category ID: %w", err)
	}
	cat.ID = id

	slog.Debug("inserted category", "id", id, "name", cat.Name, "bucket", cat.Bucket())
	s.watchers.notify(tableCategories)
	return nil
}

// UpdateCategory replaces the full record identified by cat.ID.
// Returns common.ErrNotFound when no such record exists.
func (s *Store) UpdateCategory(ctx context.Context, cat *model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCategory(cat); err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	result, err := s.db.ExecContext(ctx, `
		UPDATE categories
		SET name = ?, emoji = ?, color_hex = ?, type = ?, is_default = ?, is_suggested = ?
		WHERE id = ?`,
		cat.Name, cat.Emoji, cat.ColorHex, string(cat.Type), cat.IsDefault, cat.IsSuggested, cat.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: category %d", common.ErrNotFound, cat.ID)
	}

	s.watchers.notify(tableCategories)
	return nil
}

// DeleteCategory removes the category with the given id. Transactions
// referencing it are left intact; they render with fallback styling.
func (s *Store) DeleteCategory(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	result, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: category %d", common.ErrNotFound, id)
	}

	s.watchers.notify(tableCategories)
	return nil
}

// ListCategories returns all categories of a transaction type, defaults
// first, then by name.
func (s *Store) ListCategories(ctx context.Context, txnType model.TransactionType) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateType(txnType); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+categoryColumns+`
		FROM categories
		WHERE type = ?
		ORDER BY is_default DESC, name`, string(txnType))
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectCategories(rows)
}

// ListCategoriesByBucket returns one presentation bucket of categories
// for a transaction type, ordered by name.
func (s *Store) ListCategoriesByBucket(ctx context.Context, txnType model.TransactionType, bucket model.Bucket) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateType(txnType); err != nil {
		return nil, err
	}

	var cond string
	switch bucket {
	case model.BucketDefault:
		cond = `is_default = 1`
	case model.BucketSuggested:
		cond = `is_suggested = 1`
	case model.BucketCustom:
		cond = `is_default = 0 AND is_suggested = 0`
	default:
		return nil, fmt.Errorf("%w: unknown bucket %q", ErrInvalidCategory, bucket)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+categoryColumns+`
		FROM categories
		WHERE type = ? AND `+cond+`
		ORDER BY name`, string(txnType))
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectCategories(rows)
}

// CountCategoriesByBucket returns how many categories exist in a bucket
// for a transaction type. The registry uses this as its seeding guard.
func (s *Store) CountCategoriesByBucket(ctx context.Context, txnType model.TransactionType, bucket model.Bucket) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateType(txnType); err != nil {
		return 0, err
	}

	var cond string
	switch bucket {
	case model.BucketDefault:
		cond = `is_default = 1`
	case model.BucketSuggested:
		cond = `is_suggested = 1`
	case model.BucketCustom:
		cond = `is_default = 0 AND is_suggested = 0`
	default:
		return 0, fmt.Errorf("%w: unknown bucket %q", ErrInvalidCategory, bucket)
	}

	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM categories WHERE type = ? AND `+cond, string(txnType)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}

	return count, nil
}

// GetCategoryByID returns the category with the given id, or
// common.ErrNotFound.
func (s *Store) GetCategoryByID(ctx context.Context, id int64) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT `+categoryColumns+`
		FROM categories
		WHERE id = ?`, id)

	cat, err := scanCategory(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: category %d", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	return &cat, nil
}

// GetCategoryByName returns the category with the given name and type.
// A nil result with nil error means no such category; transactions may
// reference names with no backing row.
func (s *Store) GetCategoryByName(ctx context.Context, name string, txnType model.TransactionType) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT `+categoryColumns+`
		FROM categories
		WHERE name = ? AND type = ?`, name, string(txnType))

	cat, err := scanCategory(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // dangling references are tolerated
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	return &cat, nil
}

func collectCategories(rows *sql.Rows) ([]model.Category, error) {
	var categories []model.Category
	for rows.Next() {
		cat, err := scanCategory(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}
