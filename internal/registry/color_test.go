package registry

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestResolveColor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want lipgloss.Color
	}{
		{"rrggbb", "#FF6B6B", lipgloss.Color("#FF6B6B")},
		{"lowercase", "#ff6b6b", lipgloss.Color("#ff6b6b")},
		{"aarrggbb drops alpha", "#80FF6B6B", lipgloss.Color("#FF6B6B")},
		{"not a color", "not-a-color", FallbackColor},
		{"empty", "", FallbackColor},
		{"missing hash", "FF6B6B", FallbackColor},
		{"too short", "#FFF", FallbackColor},
		{"too long", "#FF6B6B00FF", FallbackColor},
		{"bad digit", "#GG6B6B", FallbackColor},
		{"bad digit in alpha", "#ZZFF6B6B", FallbackColor},
		{"hash only", "#", FallbackColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveColor(tt.in))
		})
	}
}
