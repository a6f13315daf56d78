package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centsible/centsible/internal/ledger"
	"github.com/centsible/centsible/internal/model"
)

func fixedNow() time.Time {
	return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
}

func testModel(t *testing.T, txns []model.Transaction, cats []model.Category) Model {
	t.Helper()
	txnCh := make(chan []model.Transaction, 1)
	catCh := make(chan []model.Category, 1)
	m := newModel(Config{Now: fixedNow}, txnCh, catCh)
	if len(cats) > 0 {
		next, _ := m.Update(categoriesMsg{categories: cats})
		m = next.(Model)
	}
	m.transactions = txns
	return m
}

func press(m Model, keys string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
	return next.(Model)
}

func TestNavigationRefusesFuturePeriods(t *testing.T) {
	m := testModel(t, nil, nil)

	start := m.current
	require.Equal(t, ledger.PeriodStart(ledger.UnitMonth, fixedNow()), start)

	// Already at the current month; forward is refused.
	m = press(m, "l")
	assert.Equal(t, start, m.current)

	// Back one month, forward returns to the bound, no further.
	m = press(m, "h")
	assert.Equal(t, start.AddDate(0, -1, 0), m.current)
	m = press(m, "l")
	m = press(m, "l")
	assert.Equal(t, start, m.current)
}

func TestNavigationPreviousIsUnbounded(t *testing.T) {
	m := testModel(t, nil, nil)

	for i := 0; i < 24; i++ {
		m = press(m, "h")
	}
	assert.Equal(t, ledger.PeriodStart(ledger.UnitMonth, fixedNow()).AddDate(0, -24, 0), m.current)
}

func TestCycleUnitClampsToNow(t *testing.T) {
	m := testModel(t, nil, nil)

	m = press(m, "u") // month -> year
	assert.Equal(t, ledger.UnitYear, m.unit)
	assert.Equal(t, ledger.PeriodStart(ledger.UnitYear, fixedNow()), m.current)

	m = press(m, "u") // year -> day
	assert.Equal(t, ledger.UnitDay, m.unit)

	m = press(m, "u") // day -> week
	assert.Equal(t, ledger.UnitWeek, m.unit)
}

func TestVisibleFiltersByPeriod(t *testing.T) {
	txns := []model.Transaction{
		{Type: model.TypeExpense, Amount: 10, Date: "2024-06-01", Category: "Food"},
		{Type: model.TypeExpense, Amount: 20, Date: "2024-05-20", Category: "Food"},
		{Type: model.TypeIncome, Amount: 99, Date: "2023-06-01", Category: "Salary"},
	}
	m := testModel(t, txns, nil)

	visible := m.visible()
	require.Len(t, visible, 1)
	assert.Equal(t, 10.0, visible[0].Amount)

	m = press(m, "h")
	visible = m.visible()
	require.Len(t, visible, 1)
	assert.Equal(t, 20.0, visible[0].Amount)
}

func TestViewRendersDanglingReference(t *testing.T) {
	txns := []model.Transaction{
		{Type: model.TypeExpense, Amount: 10, Date: "2024-06-14", Category: "Ghost"},
	}
	m := testModel(t, txns, nil)

	assert.Nil(t, m.lookupCategory("Ghost", model.TypeExpense))
	assert.NotPanics(t, func() { _ = m.View() })
	assert.Contains(t, m.View(), "Ghost")
}

func TestSnapshotMessageRearms(t *testing.T) {
	m := testModel(t, nil, nil)

	next, cmd := m.Update(transactionsMsg{transactions: []model.Transaction{
		{Type: model.TypeExpense, Amount: 5, Date: "2024-06-15", Category: "Food"},
	}})
	m = next.(Model)

	assert.Len(t, m.transactions, 1)
	assert.NotNil(t, cmd, "keeps listening for the next snapshot")
}

func TestCategorySnapshotRefreshesLookup(t *testing.T) {
	m := testModel(t, nil, nil)
	require.Nil(t, m.lookupCategory("Food", model.TypeExpense))

	next, cmd := m.Update(categoriesMsg{categories: []model.Category{
		{Name: "Food", Emoji: "🍔", ColorHex: "#FF0000", Type: model.TypeExpense},
	}})
	m = next.(Model)

	require.NotNil(t, m.lookupCategory("Food", model.TypeExpense))
	assert.NotNil(t, cmd, "keeps listening for category edits")

	// A later snapshot replaces the lookup wholesale.
	next, _ = m.Update(categoriesMsg{categories: []model.Category{
		{Name: "Dining", Emoji: "🍜", ColorHex: "#00FF00", Type: model.TypeExpense},
	}})
	m = next.(Model)
	assert.Nil(t, m.lookupCategory("Food", model.TypeExpense))
	assert.NotNil(t, m.lookupCategory("Dining", model.TypeExpense))
}
