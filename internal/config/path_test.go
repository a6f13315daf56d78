package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("CENTSIBLE_TEST_DIR", "/tmp/ledger")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"absolute untouched", "/var/lib/db", "/var/lib/db"},
		{"tilde", "~/data/ledger.db", filepath.Join(home, "data", "ledger.db")},
		{"bare tilde", "~", home},
		{"env var", "$CENTSIBLE_TEST_DIR/ledger.db", "/tmp/ledger/ledger.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestDefaultDBPathHonorsXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	assert.Equal(t, "/tmp/xdg/centsible/centsible.db", DefaultDBPath())
}
