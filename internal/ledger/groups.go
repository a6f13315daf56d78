package ledger

import (
	"sort"
	"time"

	"github.com/centsible/centsible/internal/model"
)

// DayGroup is one calendar day of transactions for list rendering.
type DayGroup struct {
	Label        string
	Transactions []model.Transaction
}

// GroupByDay splits txns into per-day groups, most recent day first.
// The current and previous day (relative to now) are labeled "Today" and
// "Yesterday"; other days read like "Monday, January 2". Order within a
// group follows a stable descending-date sort of the input, so records
// sharing a date keep their original relative order. Transactions whose
// dates do not parse are appended last, grouped under the raw date string.
func GroupByDay(txns []model.Transaction, now time.Time) []DayGroup {
	sorted := make([]model.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, iOK := sorted[i].ParsedDate()
		dj, jOK := sorted[j].ParsedDate()
		if iOK != jOK {
			return iOK // parseable dates sort before unparseable ones
		}
		if !iOK {
			return false
		}
		return di.After(dj)
	})

	today := dateOnly(now)
	yesterday := today.AddDate(0, 0, -1)

	var groups []DayGroup
	index := make(map[string]int)

	for _, txn := range sorted {
		var label string
		if d, ok := txn.ParsedDate(); ok {
			switch {
			case sameDay(d, today):
				label = "Today"
			case sameDay(d, yesterday):
				label = "Yesterday"
			default:
				label = d.Format("Monday, January 2")
			}
		} else {
			label = txn.Date
		}

		// key on the raw date so distinct years sharing a formatted
		// label never merge
		i, seen := index[txn.Date]
		if !seen {
			i = len(groups)
			index[txn.Date] = i
			groups = append(groups, DayGroup{Label: label})
		}
		groups[i].Transactions = append(groups[i].Transactions, txn)
	}

	return groups
}
