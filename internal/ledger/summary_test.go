package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/centsible/centsible/internal/model"
)

func TestSum(t *testing.T) {
	txns := []model.Transaction{
		expense("2024-01-05", 50),
		expense("2024-01-06", 30),
		income("2024-01-05", 100),
	}

	assert.Equal(t, 80.0, Sum(txns, model.TypeExpense))
	assert.Equal(t, 100.0, Sum(txns, model.TypeIncome))
}

func TestNet(t *testing.T) {
	txns := []model.Transaction{
		expense("2024-01-05", 50),
		income("2024-01-05", 120),
	}

	assert.Equal(t, 70.0, Net(txns))
}

func TestPeriodTotal(t *testing.T) {
	now := day("2024-01-02") // early January, just past a year boundary

	txns := []model.Transaction{
		expense("2024-01-02", 10), // today
		expense("2024-01-01", 20), // this week, this month
		expense("2023-12-28", 40), // this rolling week, previous year
		expense("2023-12-25", 80), // outside the rolling week
		expense("2023-01-02", 160),
		income("2024-01-02", 999), // income never counts
		expense("garbage", 5),     // unparseable, only All Time sees it
	}

	tests := []struct {
		period Period
		want   float64
	}{
		{PeriodToday, 10},
		{PeriodThisWeek, 70}, // strictly after 2023-12-26: 10+20+40
		{PeriodThisMonth, 30},
		{PeriodThisYear, 30},
		{PeriodAllTime, 315},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			assert.Equal(t, tt.want, PeriodTotal(txns, tt.period, now))
		})
	}
}

func TestPeriodTotalDecemberBoundary(t *testing.T) {
	// "This Month" compares calendar month and year, so December of the
	// previous year never bleeds into January.
	now := day("2024-01-15")
	txns := []model.Transaction{
		expense("2023-12-31", 100),
		expense("2024-01-01", 25),
		expense("2024-01-15", 25),
	}

	assert.Equal(t, 50.0, PeriodTotal(txns, PeriodThisMonth, now))
	assert.Equal(t, 50.0, PeriodTotal(txns, PeriodThisYear, now))
}
