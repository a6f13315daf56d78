package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/centsible/centsible/internal/common"
	"github.com/centsible/centsible/internal/config"
	"github.com/centsible/centsible/internal/model"
	"github.com/centsible/centsible/internal/registry"
	"github.com/centsible/centsible/internal/storage"
)

// initStorage opens the configured database, migrates it, and seeds the
// built-in category sets. Seeding is guarded by persisted row counts, so
// it is safe on every start.
func initStorage(ctx context.Context) (*storage.Store, *registry.Registry, error) {
	dbPath := config.ExpandPath(viper.GetString("database.path"))
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	}

	store, err := storage.NewStore(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open storage: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("failed to migrate storage: %w", err)
	}

	reg := registry.New(store)
	if err := reg.SeedDefaults(ctx); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("failed to seed categories: %w", err)
	}

	return store, reg, nil
}

// parseType maps user input to a transaction type.
func parseType(s string) (model.TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "expense", "e":
		return model.TypeExpense, nil
	case "income", "i":
		return model.TypeIncome, nil
	default:
		return "", common.NewUserError(fmt.Sprintf("unknown type %q (expected expense or income)", s), nil)
	}
}

// parseAmount validates a user-entered amount: numeric and non-negative.
func parseAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, common.NewUserError(fmt.Sprintf("amount %q is not a number", s), err)
	}
	if amount < 0 {
		return 0, common.NewUserError("amount cannot be negative", nil)
	}
	return amount, nil
}

// parseDate accepts an ISO calendar date, defaulting to today when empty.
func parseDate(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return time.Now().Format(model.DateLayout), nil
	}
	if _, err := time.Parse(model.DateLayout, s); err != nil {
		return "", common.NewUserError(fmt.Sprintf("date %q is not in YYYY-MM-DD form", s), err)
	}
	return s, nil
}
