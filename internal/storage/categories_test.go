package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centsible/centsible/internal/common"
	"github.com/centsible/centsible/internal/model"
)

func TestAddCategoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	cat := model.Category{
		Name:     "Coffee",
		Emoji:    "☕",
		ColorHex: "#6F4E37",
		Type:     model.TypeExpense,
	}
	require.NoError(t, store.AddCategory(ctx, &cat))
	assert.NotZero(t, cat.ID)
	assert.NotZero(t, cat.CreatedAt)

	got, err := store.GetCategoryByID(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, cat, *got)
	assert.Equal(t, model.BucketCustom, got.Bucket())
}

func TestCategoryBuckets(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	seed := []model.Category{
		{Name: "Food", Emoji: "🍔", ColorHex: "#FF6B6B", Type: model.TypeExpense, IsDefault: true},
		{Name: "Coffee", Emoji: "☕", ColorHex: "#6F4E37", Type: model.TypeExpense, IsSuggested: true},
		{Name: "Hobby", Emoji: "🎨", ColorHex: "#AA00FF", Type: model.TypeExpense},
		{Name: "Salary", Emoji: "💼", ColorHex: "#2ECC71", Type: model.TypeIncome, IsDefault: true},
	}
	for i := range seed {
		require.NoError(t, store.AddCategory(ctx, &seed[i]))
	}

	tests := []struct {
		bucket model.Bucket
		typ    model.TransactionType
		want   []string
	}{
		{model.BucketDefault, model.TypeExpense, []string{"Food"}},
		{model.BucketSuggested, model.TypeExpense, []string{"Coffee"}},
		{model.BucketCustom, model.TypeExpense, []string{"Hobby"}},
		{model.BucketDefault, model.TypeIncome, []string{"Salary"}},
		{model.BucketCustom, model.TypeIncome, nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ)+"/"+string(tt.bucket), func(t *testing.T) {
			cats, err := store.ListCategoriesByBucket(ctx, tt.typ, tt.bucket)
			require.NoError(t, err)

			var names []string
			for _, cat := range cats {
				names = append(names, cat.Name)
			}
			assert.Equal(t, tt.want, names)

			count, err := store.CountCategoriesByBucket(ctx, tt.typ, tt.bucket)
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), count)
		})
	}
}

func TestCategoryRejectsConflictingBuckets(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	cat := model.Category{
		Name:        "Broken",
		Emoji:       "❓",
		ColorHex:    "#000000",
		Type:        model.TypeExpense,
		IsDefault:   true,
		IsSuggested: true,
	}
	assert.ErrorIs(t, store.AddCategory(ctx, &cat), ErrInvalidCategory)
}

func TestUpdateCategory(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	cat := model.Category{Name: "Pets", Emoji: "🐾", ColorHex: "#E17055", Type: model.TypeExpense}
	require.NoError(t, store.AddCategory(ctx, &cat))

	cat.Emoji = "🐕"
	cat.ColorHex = "#FFAA00"
	require.NoError(t, store.UpdateCategory(ctx, &cat))

	got, err := store.GetCategoryByID(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, "🐕", got.Emoji)
	assert.Equal(t, "#FFAA00", got.ColorHex)
}

func TestUpdateCategoryNotFound(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	cat := model.Category{ID: 777, Name: "Ghost", Emoji: "👻", ColorHex: "#FFFFFF", Type: model.TypeExpense}
	assert.ErrorIs(t, store.UpdateCategory(ctx, &cat), common.ErrNotFound)
}

func TestDeleteCategoryLeavesTransactionsIntact(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	cat := model.Category{Name: "Travel", Emoji: "✈️", ColorHex: "#0984E3", Type: model.TypeExpense}
	require.NoError(t, store.AddCategory(ctx, &cat))

	txn := model.Transaction{Amount: 300, Type: model.TypeExpense, Date: "2024-01-05", Category: "Travel"}
	require.NoError(t, store.AddTransaction(ctx, &txn))

	require.NoError(t, store.DeleteCategory(ctx, cat.ID))

	// The transaction survives with a dangling category reference.
	got, err := store.GetTransactionByID(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, "Travel", got.Category)

	dangling, err := store.GetCategoryByName(ctx, "Travel", model.TypeExpense)
	require.NoError(t, err)
	assert.Nil(t, dangling)
}

func TestGetCategoryByNameScopedByType(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	cat := model.Category{Name: "Other", Emoji: "📦", ColorHex: "#95A5A6", Type: model.TypeExpense}
	require.NoError(t, store.AddCategory(ctx, &cat))

	got, err := store.GetCategoryByName(ctx, "Other", model.TypeExpense)
	require.NoError(t, err)
	require.NotNil(t, got)

	missing, err := store.GetCategoryByName(ctx, "Other", model.TypeIncome)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
