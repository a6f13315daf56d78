// Package model defines the core domain models used throughout the application.
package model

import "time"

// TransactionType indicates whether a transaction is money in or money out.
type TransactionType string

const (
	// TypeExpense represents money leaving the ledger.
	TypeExpense TransactionType = "Expense"
	// TypeIncome represents money entering the ledger.
	TypeIncome TransactionType = "Income"
)

// DateLayout is the calendar-date form transactions are stored in.
const DateLayout = "2006-01-02"

// Transaction represents a single recorded income or expense.
type Transaction struct {
	Date      string // ISO-8601 calendar date, no time zone
	Time      string // optional clock time, "" means unspecified
	Category  string // references Category.Name of the same Type, not enforced
	Notes     string
	Type      TransactionType
	Amount    float64 // always non-negative; sign is derived from Type
	ID        int64
	CreatedAt int64 // epoch millis, immutable after insert
}

// ParsedDate returns the transaction's calendar date. The second return is
// false when Date does not parse; callers must treat such records as outside
// any date range rather than failing.
func (t *Transaction) ParsedDate() (time.Time, bool) {
	d, err := time.Parse(DateLayout, t.Date)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Signed returns the amount with the sign implied by the transaction type.
func (t *Transaction) Signed() float64 {
	if t.Type == TypeExpense {
		return -t.Amount
	}
	return t.Amount
}
