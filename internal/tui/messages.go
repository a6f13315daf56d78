package tui

import "github.com/centsible/centsible/internal/model"

// Data loading messages.
type transactionsMsg struct {
	transactions []model.Transaction
}

type categoriesMsg struct {
	categories []model.Category
}

type watchClosedMsg struct{}
