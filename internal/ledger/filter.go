// Package ledger implements pure aggregation over transaction snapshots:
// date-range filtering, period totals, calendar grouping, and the chart
// series the presentation layer draws. Nothing here touches storage; every
// function takes an immutable snapshot and a reference time.
package ledger

import (
	"time"

	"github.com/centsible/centsible/internal/model"
)

// Mode selects the date window a filter keeps.
type Mode int

const (
	// ModeAll applies no date restriction.
	ModeAll Mode = iota
	// ModeDay keeps transactions on one calendar date.
	ModeDay
	// ModeWeek keeps transactions in the Monday-anchored week of the reference.
	ModeWeek
	// ModeMonth keeps transactions in the reference's calendar month.
	ModeMonth
)

// CategoryAll is the secondary category filter value that passes everything.
const CategoryAll = "All"

// Filter returns the subset of txns inside the date window selected by
// mode and ref, then applies the secondary category filter: "Income" and
// "Expense" restrict by transaction type; any other value passes all.
// Transactions with unparseable dates never match a date window.
func Filter(txns []model.Transaction, mode Mode, ref time.Time, category string) []model.Transaction {
	out := make([]model.Transaction, 0, len(txns))
	for _, txn := range txns {
		if !inWindow(&txn, mode, ref) {
			continue
		}
		switch category {
		case string(model.TypeIncome):
			if txn.Type != model.TypeIncome {
				continue
			}
		case string(model.TypeExpense):
			if txn.Type != model.TypeExpense {
				continue
			}
		}
		out = append(out, txn)
	}
	return out
}

func inWindow(txn *model.Transaction, mode Mode, ref time.Time) bool {
	if mode == ModeAll {
		return true
	}

	d, ok := txn.ParsedDate()
	if !ok {
		return false
	}

	switch mode {
	case ModeDay:
		return sameDay(d, ref)
	case ModeWeek:
		return sameDay(WeekStart(d), WeekStart(ref))
	case ModeMonth:
		return d.Year() == ref.Year() && d.Month() == ref.Month()
	default:
		return true
	}
}

// WeekStart returns the Monday of t's week, truncated to midnight.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return dateOnly(t).AddDate(0, 0, -offset)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
