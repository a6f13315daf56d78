// Package storage provides the data persistence layer for the centsible application.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/centsible/centsible/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrNilParameter       = errors.New("parameter cannot be nil")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidType        = errors.New("invalid transaction type")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateType ensures the type is one of the known transaction types.
func validateType(t model.TransactionType) error {
	switch t {
	case model.TypeExpense, model.TypeIncome:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidType, t)
	}
}

// validateTransaction validates a single transaction before persisting.
// The date string itself is not parsed here: records with unparseable
// dates are stored and simply fall outside every date filter.
func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if txn.Amount < 0 {
		return fmt.Errorf("%w: amount cannot be negative", ErrInvalidTransaction)
	}
	if err := validateType(txn.Type); err != nil {
		return err
	}
	if strings.TrimSpace(txn.Date) == "" {
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	}
	if strings.TrimSpace(txn.Category) == "" {
		return fmt.Errorf("%w: missing category", ErrInvalidTransaction)
	}
	return nil
}

// validateCategory validates a category before persisting.
func validateCategory(cat *model.Category) error {
	if cat == nil {
		return fmt.Errorf("%w: category", ErrNilParameter)
	}
	if strings.TrimSpace(cat.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidCategory)
	}
	if err := validateType(cat.Type); err != nil {
		return err
	}
	if cat.IsDefault && cat.IsSuggested {
		return fmt.Errorf("%w: cannot be both default and suggested", ErrInvalidCategory)
	}
	return nil
}
