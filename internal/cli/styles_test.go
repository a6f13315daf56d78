package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/centsible/centsible/internal/model"
)

func TestCategoryBadgeFallbacks(t *testing.T) {
	t.Run("dangling reference", func(t *testing.T) {
		badge := CategoryBadge(nil, "Ghost")
		assert.Contains(t, badge, FallbackEmoji)
		assert.Contains(t, badge, "Ghost")
	})

	t.Run("bad color never panics", func(t *testing.T) {
		cat := &model.Category{Name: "Broken", Emoji: "🎨", ColorHex: "not-a-color", Type: model.TypeExpense}
		badge := CategoryBadge(cat, "ignored")
		assert.Contains(t, badge, "🎨")
		assert.Contains(t, badge, "Broken")
	})

	t.Run("empty emoji falls back", func(t *testing.T) {
		cat := &model.Category{Name: "Plain", ColorHex: "#FF6B6B", Type: model.TypeExpense}
		assert.Contains(t, CategoryBadge(cat, "Plain"), FallbackEmoji)
	})
}

func TestAmountDirection(t *testing.T) {
	assert.Contains(t, Amount(model.TypeIncome, 12.5), "+12.50")
	assert.Contains(t, Amount(model.TypeExpense, 12.5), "-12.50")
}
