package registry

import "github.com/centsible/centsible/internal/model"

// builtinDefaults returns the fixed starter set for a type. Seeded once
// per type; not editable or deletable afterwards.
func builtinDefaults(txnType model.TransactionType) []model.Category {
	var seed []model.Category
	switch txnType {
	case model.TypeIncome:
		seed = []model.Category{
			{Name: "Salary", Emoji: "💼", ColorHex: "#2ECC71"},
			{Name: "Business", Emoji: "📈", ColorHex: "#3498DB"},
			{Name: "Gifts", Emoji: "🎁", ColorHex: "#9B59B6"},
			{Name: "Other", Emoji: "💰", ColorHex: "#95A5A6"},
		}
	default:
		seed = []model.Category{
			{Name: "Food", Emoji: "🍔", ColorHex: "#FF6B6B"},
			{Name: "Groceries", Emoji: "🛒", ColorHex: "#26A69A"},
			{Name: "Transport", Emoji: "🚗", ColorHex: "#4ECDC4"},
			{Name: "Shopping", Emoji: "🛍️", ColorHex: "#F7B731"},
			{Name: "Bills", Emoji: "⚡", ColorHex: "#5F27CD"},
			{Name: "Entertainment", Emoji: "🎬", ColorHex: "#FF9F43"},
			{Name: "Health", Emoji: "💊", ColorHex: "#10AC84"},
			{Name: "Other", Emoji: "📦", ColorHex: "#95A5A6"},
		}
	}

	for i := range seed {
		seed[i].Type = txnType
		seed[i].IsDefault = true
	}
	return seed
}

// builtinSuggestions returns the optional starter suggestions for a
// type. The user may promote any of these into a custom category.
func builtinSuggestions(txnType model.TransactionType) []model.Category {
	var seed []model.Category
	switch txnType {
	case model.TypeIncome:
		seed = []model.Category{
			{Name: "Freelance", Emoji: "🧑‍💻", ColorHex: "#1ABC9C"},
			{Name: "Investments", Emoji: "📊", ColorHex: "#E67E22"},
			{Name: "Refunds", Emoji: "💸", ColorHex: "#16A085"},
		}
	default:
		seed = []model.Category{
			{Name: "Pets", Emoji: "🐾", ColorHex: "#E17055"},
			{Name: "Travel", Emoji: "✈️", ColorHex: "#0984E3"},
			{Name: "Education", Emoji: "📚", ColorHex: "#6C5CE7"},
			{Name: "Coffee", Emoji: "☕", ColorHex: "#6F4E37"},
			{Name: "Subscriptions", Emoji: "📺", ColorHex: "#D63031"},
			{Name: "Rent", Emoji: "🏠", ColorHex: "#00B894"},
		}
	}

	for i := range seed {
		seed[i].Type = txnType
		seed[i].IsSuggested = true
	}
	return seed
}
