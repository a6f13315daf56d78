// Package tui implements the interactive ledger browser: a live view of
// transactions grouped by day, period summaries, and net-flow charts,
// with keyboard period navigation standing in for the source app's
// drag gestures.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/centsible/centsible/internal/ledger"
	"github.com/centsible/centsible/internal/model"
	"github.com/centsible/centsible/internal/storage"
)

// Config carries everything the browser needs to run.
type Config struct {
	Store *storage.Store
	Now   func() time.Time // defaults to time.Now
}

// Model holds the browser state.
type Model struct {
	now          func() time.Time
	txnWatch     <-chan []model.Transaction
	catWatch     <-chan []model.Category
	catLookup    map[catKey]model.Category
	transactions []model.Transaction
	keymap       KeyMap
	help         help.Model
	current      time.Time
	unit         ledger.Unit
	width        int
	height       int
	quitting     bool
}

type catKey struct {
	name string
	typ  model.TransactionType
}

func newModel(cfg Config, txnWatch <-chan []model.Transaction, catWatch <-chan []model.Category) Model {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return Model{
		now:       now,
		txnWatch:  txnWatch,
		catWatch:  catWatch,
		catLookup: make(map[catKey]model.Category),
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		unit:      ledger.UnitMonth,
		current:   ledger.PeriodStart(ledger.UnitMonth, now()),
	}
}

// Init starts listening for store snapshots.
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForSnapshot(m.txnWatch), waitForCategories(m.catWatch))
}

// waitForSnapshot blocks on the store's live view and converts each
// fresh snapshot into a message.
func waitForSnapshot(ch <-chan []model.Transaction) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return watchClosedMsg{}
		}
		return transactionsMsg{transactions: snap}
	}
}

// waitForCategories does the same for the category table, so edits made
// in another session refresh the badge lookup live.
func waitForCategories(ch <-chan []model.Category) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return watchClosedMsg{}
		}
		return categoriesMsg{categories: snap}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case transactionsMsg:
		m.transactions = msg.transactions
		return m, waitForSnapshot(m.txnWatch)

	case categoriesMsg:
		lookup := make(map[catKey]model.Category, len(msg.categories))
		for _, cat := range msg.categories {
			lookup[catKey{name: cat.Name, typ: cat.Type}] = cat
		}
		m.catLookup = lookup
		return m, waitForCategories(m.catWatch)

	case watchClosedMsg:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.PrevPeriod):
		m.current = ledger.Prev(m.unit, m.current)
		return m, nil

	case key.Matches(msg, m.keymap.NextPeriod):
		// refused at the current real-world period
		if next, ok := ledger.Next(m.unit, m.current, m.now()); ok {
			m.current = next
		}
		return m, nil

	case key.Matches(msg, m.keymap.CycleUnit):
		m.unit = nextUnit(m.unit)
		m.current = ledger.PeriodStart(m.unit, m.clampToNow(m.current))
		return m, nil

	case key.Matches(msg, m.keymap.Today):
		m.current = ledger.PeriodStart(m.unit, m.now())
		return m, nil

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

func (m Model) clampToNow(t time.Time) time.Time {
	nowStart := ledger.PeriodStart(m.unit, m.now())
	if ledger.PeriodStart(m.unit, t).After(nowStart) {
		return nowStart
	}
	return t
}

func nextUnit(u ledger.Unit) ledger.Unit {
	switch u {
	case ledger.UnitDay:
		return ledger.UnitWeek
	case ledger.UnitWeek:
		return ledger.UnitMonth
	case ledger.UnitMonth:
		return ledger.UnitYear
	default:
		return ledger.UnitDay
	}
}

// visible returns the transactions inside the browsed period.
func (m Model) visible() []model.Transaction {
	switch m.unit {
	case ledger.UnitDay:
		return ledger.Filter(m.transactions, ledger.ModeDay, m.current, ledger.CategoryAll)
	case ledger.UnitWeek:
		return ledger.Filter(m.transactions, ledger.ModeWeek, m.current, ledger.CategoryAll)
	case ledger.UnitMonth:
		return ledger.Filter(m.transactions, ledger.ModeMonth, m.current, ledger.CategoryAll)
	default:
		year := m.current.Year()
		var out []model.Transaction
		for _, txn := range m.transactions {
			if d, ok := txn.ParsedDate(); ok && d.Year() == year {
				out = append(out, txn)
			}
		}
		return out
	}
}

// Run starts the browser and blocks until the user quits.
func Run(ctx context.Context, cfg Config) error {
	txnWatch, cancelTxns, err := cfg.Store.WatchTransactions(ctx)
	if err != nil {
		return err
	}
	defer cancelTxns()

	catWatch, cancelCats, err := cfg.Store.WatchAllCategories(ctx)
	if err != nil {
		return err
	}
	defer cancelCats()

	p := tea.NewProgram(newModel(cfg, txnWatch, catWatch), tea.WithContext(ctx), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
