package ledger

import (
	"time"

	"github.com/centsible/centsible/internal/model"
)

// Period names a spending-summary window.
type Period string

// Spending-summary periods.
const (
	PeriodToday     Period = "Today"
	PeriodThisWeek  Period = "This Week"
	PeriodThisMonth Period = "This Month"
	PeriodThisYear  Period = "This Year"
	PeriodAllTime   Period = "All Time"
)

// Periods lists every summary period in display order.
var Periods = []Period{PeriodToday, PeriodThisWeek, PeriodThisMonth, PeriodThisYear, PeriodAllTime}

// Sum totals the amounts of txns matching the given type.
func Sum(txns []model.Transaction, txnType model.TransactionType) float64 {
	var total float64
	for _, txn := range txns {
		if txn.Type == txnType {
			total += txn.Amount
		}
	}
	return total
}

// Net returns income minus expenses over txns.
func Net(txns []model.Transaction) float64 {
	var net float64
	for _, txn := range txns {
		net += txn.Signed()
	}
	return net
}

// PeriodTotal sums expense amounts inside the named period, measured
// against now. "This Week" is a rolling window of the last seven days
// (dates strictly after now minus seven days); "This Month" and
// "This Year" compare calendar components only.
func PeriodTotal(txns []model.Transaction, period Period, now time.Time) float64 {
	today := dateOnly(now)
	weekCutoff := today.AddDate(0, 0, -7)

	var total float64
	for _, txn := range txns {
		if txn.Type != model.TypeExpense {
			continue
		}

		if period != PeriodAllTime {
			d, ok := txn.ParsedDate()
			if !ok {
				continue
			}

			switch period {
			case PeriodToday:
				if !sameDay(d, today) {
					continue
				}
			case PeriodThisWeek:
				if !d.After(weekCutoff) {
					continue
				}
			case PeriodThisMonth:
				if d.Year() != today.Year() || d.Month() != today.Month() {
					continue
				}
			case PeriodThisYear:
				if d.Year() != today.Year() {
					continue
				}
			}
		}

		total += txn.Amount
	}
	return total
}
