// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/centsible/centsible/internal/model"
	"github.com/centsible/centsible/internal/registry"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#4ECDC4")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#2ECC71")
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFE66D")
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#95E1D3")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats errors or failure messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// IncomeStyle formats positive amounts.
	IncomeStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// ExpenseStyle formats negative amounts.
	ExpenseStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)
)

// FallbackEmoji marks a transaction whose category no longer exists.
const FallbackEmoji = "🏷️"

// CategoryBadge renders a category as a colored emoji/name pair. A nil
// category (a dangling reference) renders with the fallback emoji and
// gray; a category with a bad color string renders with gray.
func CategoryBadge(cat *model.Category, name string) string {
	emoji := FallbackEmoji
	color := registry.FallbackColor
	if cat != nil {
		name = cat.Name
		if cat.Emoji != "" {
			emoji = cat.Emoji
		}
		color = registry.ResolveColor(cat.ColorHex)
	}

	style := lipgloss.NewStyle().Foreground(color)
	return fmt.Sprintf("%s %s", emoji, style.Render(name))
}

// Amount renders a signed amount, colored by direction.
func Amount(txnType model.TransactionType, amount float64) string {
	if txnType == model.TypeIncome {
		return IncomeStyle.Render(fmt.Sprintf("+%.2f", amount))
	}
	return ExpenseStyle.Render(fmt.Sprintf("-%.2f", amount))
}
