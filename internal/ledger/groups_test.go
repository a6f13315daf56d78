package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centsible/centsible/internal/model"
)

func TestGroupByDayLabels(t *testing.T) {
	now := day("2024-03-15") // a Friday

	txns := []model.Transaction{
		expense("2024-03-13", 1),
		expense("2024-03-15", 2),
		expense("2024-03-14", 3),
	}

	groups := GroupByDay(txns, now)
	require.Len(t, groups, 3)
	assert.Equal(t, "Today", groups[0].Label)
	assert.Equal(t, "Yesterday", groups[1].Label)
	assert.Equal(t, "Wednesday, March 13", groups[2].Label)
}

func TestGroupByDayOrdering(t *testing.T) {
	now := day("2024-03-15")

	// Two records share a date; the stable sort must keep their
	// original relative order inside the group.
	first := expense("2024-03-10", 1)
	first.Notes = "first"
	second := expense("2024-03-10", 2)
	second.Notes = "second"

	txns := []model.Transaction{
		expense("2024-03-01", 9),
		first,
		second,
		expense("2024-03-12", 5),
	}

	groups := GroupByDay(txns, now)
	require.Len(t, groups, 3)

	assert.Equal(t, "Tuesday, March 12", groups[0].Label)
	require.Len(t, groups[1].Transactions, 2)
	assert.Equal(t, "first", groups[1].Transactions[0].Notes)
	assert.Equal(t, "second", groups[1].Transactions[1].Notes)
	assert.Equal(t, "Friday, March 1", groups[2].Label)
}

func TestGroupByDayUnparseableLast(t *testing.T) {
	now := day("2024-03-15")

	txns := []model.Transaction{
		expense("bogus", 1),
		expense("2024-03-15", 2),
	}

	groups := GroupByDay(txns, now)
	require.Len(t, groups, 2)
	assert.Equal(t, "Today", groups[0].Label)
	assert.Equal(t, "bogus", groups[1].Label)
}

func TestGroupByDayEmpty(t *testing.T) {
	assert.Empty(t, GroupByDay(nil, day("2024-03-15")))
}
