package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centsible/centsible/internal/common"
	"github.com/centsible/centsible/internal/model"
)

func TestAddTransactionRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	txn := model.Transaction{
		Amount:   42.50,
		Type:     model.TypeExpense,
		Date:     "2024-01-05",
		Time:     "12:30",
		Category: "Food",
		Notes:    "lunch",
	}
	require.NoError(t, store.AddTransaction(ctx, &txn))
	assert.NotZero(t, txn.ID)
	assert.NotZero(t, txn.CreatedAt)

	// Reading back yields a record equal in all fields with the
	// freshly assigned id.
	got, err := store.GetTransactionByID(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, txn, *got)
}

func TestAddTransactionValidation(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	tests := []struct {
		name string
		txn  model.Transaction
	}{
		{"negative amount", model.Transaction{Amount: -1, Type: model.TypeExpense, Date: "2024-01-05", Category: "Food"}},
		{"missing category", model.Transaction{Amount: 1, Type: model.TypeExpense, Date: "2024-01-05"}},
		{"missing date", model.Transaction{Amount: 1, Type: model.TypeExpense, Category: "Food"}},
		{"bad type", model.Transaction{Amount: 1, Type: "Transfer", Date: "2024-01-05", Category: "Food"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := tt.txn
			assert.Error(t, store.AddTransaction(ctx, &txn))
		})
	}

	txns, err := store.ListTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestUpdateTransaction(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	txn := model.Transaction{Amount: 10, Type: model.TypeExpense, Date: "2024-01-05", Category: "Food"}
	require.NoError(t, store.AddTransaction(ctx, &txn))
	created := txn.CreatedAt

	txn.Amount = 25
	txn.Category = "Groceries"
	require.NoError(t, store.UpdateTransaction(ctx, &txn))

	got, err := store.GetTransactionByID(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, 25.0, got.Amount)
	assert.Equal(t, "Groceries", got.Category)
	assert.Equal(t, created, got.CreatedAt, "creation timestamp is immutable")
}

func TestUpdateTransactionNotFound(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	txn := model.Transaction{ID: 12345, Amount: 10, Type: model.TypeExpense, Date: "2024-01-05", Category: "Food"}
	err := store.UpdateTransaction(ctx, &txn)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteTransaction(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	txn := model.Transaction{Amount: 10, Type: model.TypeExpense, Date: "2024-01-05", Category: "Food"}
	require.NoError(t, store.AddTransaction(ctx, &txn))

	require.NoError(t, store.DeleteTransaction(ctx, txn.ID))

	_, err := store.GetTransactionByID(ctx, txn.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	assert.ErrorIs(t, store.DeleteTransaction(ctx, txn.ID), common.ErrNotFound)
}

func TestDeleteAllTransactions(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for i := 0; i < 3; i++ {
		txn := model.Transaction{Amount: float64(i + 1), Type: model.TypeExpense, Date: "2024-01-05", Category: "Food"}
		require.NoError(t, store.AddTransaction(ctx, &txn))
	}

	require.NoError(t, store.DeleteAllTransactions(ctx))

	txns, err := store.ListTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, txns)

	// Removing nothing is fine.
	require.NoError(t, store.DeleteAllTransactions(ctx))
}

func TestListTransactionsOrder(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	older := model.Transaction{Amount: 1, Type: model.TypeExpense, Date: "2024-01-01", Category: "Food", CreatedAt: 1000}
	newer := model.Transaction{Amount: 2, Type: model.TypeExpense, Date: "2024-01-02", Category: "Food", CreatedAt: 2000}
	require.NoError(t, store.AddTransaction(ctx, &older))
	require.NoError(t, store.AddTransaction(ctx, &newer))

	txns, err := store.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, newer.ID, txns[0].ID, "most recently created first")
}

func TestUnparseableDateIsStoredNotRejected(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	txn := model.Transaction{Amount: 5, Type: model.TypeExpense, Date: "someday", Category: "Food"}
	require.NoError(t, store.AddTransaction(ctx, &txn))

	got, err := store.GetTransactionByID(ctx, txn.ID)
	require.NoError(t, err)
	_, ok := got.ParsedDate()
	assert.False(t, ok)
}
