package registry

import (
	"github.com/charmbracelet/lipgloss"
)

// FallbackColor is rendered whenever a category color fails to parse or
// a transaction references a category that no longer exists.
const FallbackColor = lipgloss.Color("#666666")

// ResolveColor turns a stored #RRGGBB or #AARRGGBB string into a display
// color. Resolution is total: anything malformed yields FallbackColor,
// never an error. Alpha channels are dropped; terminals render opaque.
func ResolveColor(hex string) lipgloss.Color {
	if len(hex) == 0 || hex[0] != '#' {
		return FallbackColor
	}

	digits := hex[1:]
	switch len(digits) {
	case 6:
	case 8:
		digits = digits[2:] // strip alpha
	default:
		return FallbackColor
	}

	for _, c := range hex[1:] {
		if !isHexDigit(c) {
			return FallbackColor
		}
	}

	return lipgloss.Color("#" + digits)
}

func isHexDigit(c rune) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}
