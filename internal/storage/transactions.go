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

// AddTransaction persists a new transaction, assigning its id and, when
// unset, its creation timestamp. Live transaction watchers re-emit.
func (s *Store) AddTransaction(ctx context.Context, txn *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransaction(txn); err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if txn.CreatedAt == 0 {
		txn.CreatedAt = time.Now().UnixMilli()
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (amount, type, date, time, category, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		txn.Amount, string(txn.Type), txn.Date, txn.Time, txn.Category, txn.Notes, txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get transaction ID: %w", err)
	}
	txn.ID = id

	slog.Debug("inserted transaction", "id", id, "type", txn.Type, "amount", txn.Amount)
	s.watchers.notify(tableTransactions)
	return nil
}

// UpdateTransaction replaces the full record identified by txn.ID.
// Returns common.ErrNotFound when no such record exists; the creation
// timestamp is never rewritten.
func (s *Store) UpdateTransaction(ctx context.Context, txn *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransaction(txn); err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	result, err := s.db.ExecContext(ctx, `
		UPDATE transactions
		SET amount = ?, type = ?, date = ?, time = ?, category = ?, notes = ?
		WHERE id = ?`,
		txn.Amount, string(txn.Type), txn.Date, txn.Time, txn.Category, txn.Notes, txn.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: transaction %d", common.ErrNotFound, txn.ID)
	}

	s.watchers.notify(tableTransactions)
	return nil
}

// DeleteTransaction removes the transaction with the given id.
func (s *Store) DeleteTransaction(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	result, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: transaction %d", common.ErrNotFound, id)
	}

	s.watchers.notify(tableTransactions)
	return nil
}

// DeleteAllTransactions removes every transaction.
func (s *Store) DeleteAllTransactions(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	result, err := s.db.ExecContext(ctx, `DELETE FROM transactions`)
	if err != nil {
		return fmt.Errorf("failed to delete transactions: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	slog.Info("deleted all transactions", "count", affected)
	s.watchers.notify(tableTransactions)
	return nil
}

// ListTransactions returns all transactions, most recently created first.
func (s *Store) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, amount, type, date, time, category, notes, created_at
		FROM transactions
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var txns []model.Transaction
	for rows.Next() {
		var txn model.Transaction
		var typ string
		if err := rows.Scan(&txn.ID, &txn.Amount, &typ, &txn.Date, &txn.Time, &txn.Category, &txn.Notes, &txn.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txn.Type = model.TransactionType(typ)
		txns = append(txns, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return txns, nil
}

// GetTransactionByID returns the transaction with the given id, or
// common.ErrNotFound.
func (s *Store) GetTransactionByID(ctx context.Context, id int64) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var txn model.Transaction
	var typ string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, amount, type, date, time, category, notes, created_at
		FROM transactions
		WHERE id = ?`, id).
		Scan(&txn.ID, &txn.Amount, &typ, &txn.Date, &txn.Time, &txn.Category, &txn.Notes, &txn.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: transaction %d", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction: %w", err)
	}
	txn.Type = model.TransactionType(typ)

	return &txn, nil
}
