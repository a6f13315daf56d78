package ledger

import "time"

// Unit is the step size of period navigation.
type Unit int

// Navigation units.
const (
	UnitDay Unit = iota
	UnitWeek
	UnitMonth
	UnitYear
)

// PeriodStart normalizes t to the start of its period for the unit.
func PeriodStart(u Unit, t time.Time) time.Time {
	switch u {
	case UnitWeek:
		return WeekStart(t)
	case UnitMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	case UnitYear:
		return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
	default:
		return dateOnly(t)
	}
}

// Prev steps one period back. Previous navigation is unbounded.
func Prev(u Unit, cur time.Time) time.Time {
	switch u {
	case UnitWeek:
		return PeriodStart(u, cur).AddDate(0, 0, -7)
	case UnitMonth:
		return PeriodStart(u, cur).AddDate(0, -1, 0)
	case UnitYear:
		return PeriodStart(u, cur).AddDate(-1, 0, 0)
	default:
		return PeriodStart(u, cur).AddDate(0, 0, -1)
	}
}

// Next steps one period forward. The step is refused (ok=false, cur
// returned) once it would pass the current real-world period.
func Next(u Unit, cur, now time.Time) (time.Time, bool) {
	if !CanGoNext(u, cur, now) {
		return cur, false
	}

	switch u {
	case UnitWeek:
		return PeriodStart(u, cur).AddDate(0, 0, 7), true
	case UnitMonth:
		return PeriodStart(u, cur).AddDate(0, 1, 0), true
	case UnitYear:
		return PeriodStart(u, cur).AddDate(1, 0, 0), true
	default:
		return PeriodStart(u, cur).AddDate(0, 0, 1), true
	}
}

// CanGoNext reports whether stepping forward stays at or before the
// period containing now.
func CanGoNext(u Unit, cur, now time.Time) bool {
	return PeriodStart(u, cur).Before(PeriodStart(u, now))
}
