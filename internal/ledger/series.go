package ledger

import (
	"strconv"
	"time"

	"github.com/centsible/centsible/internal/model"
)

// Point is one labeled bucket of a chart series. Net is income minus
// expenses inside the bucket, zero when nothing matched.
type Point struct {
	Label string
	Net   float64
}

// MonthlySeries buckets txns into the twelve months of a year. Every
// month appears, empty ones included.
func MonthlySeries(txns []model.Transaction, year int) []Point {
	points := make([]Point, 12)
	for i := range points {
		points[i].Label = time.Month(i + 1).String()[:3]
	}

	for _, txn := range txns {
		d, ok := txn.ParsedDate()
		if !ok || d.Year() != year {
			continue
		}
		points[int(d.Month())-1].Net += txn.Signed()
	}

	return points
}

// DailySeriesForMonth buckets txns into each day of the month containing
// ref. Labels are day-of-month numbers; every day appears.
func DailySeriesForMonth(txns []model.Transaction, ref time.Time) []Point {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	days := first.AddDate(0, 1, -1).Day()

	points := make([]Point, days)
	for i := range points {
		points[i].Label = strconv.Itoa(i + 1)
	}

	for _, txn := range txns {
		d, ok := txn.ParsedDate()
		if !ok || d.Year() != ref.Year() || d.Month() != ref.Month() {
			continue
		}
		points[d.Day()-1].Net += txn.Signed()
	}

	return points
}

// DailySeriesForWeek buckets txns into the seven days of the
// Monday-anchored week starting at weekStart. Every day appears.
func DailySeriesForWeek(txns []model.Transaction, weekStart time.Time) []Point {
	start := WeekStart(weekStart)

	days := make([]time.Time, 7)
	points := make([]Point, 7)
	for i := range points {
		days[i] = start.AddDate(0, 0, i)
		points[i].Label = days[i].Format("Mon")
	}

	for _, txn := range txns {
		d, ok := txn.ParsedDate()
		if !ok {
			continue
		}
		// d and start may carry different locations; compare calendar
		// days instead of dividing a duration.
		for i := range days {
			if sameDay(d, days[i]) {
				points[i].Net += txn.Signed()
				break
			}
		}
	}

	return points
}
