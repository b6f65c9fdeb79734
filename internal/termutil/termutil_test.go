package termutil

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTerminalNonFileWriters(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
	assert.False(t, IsTerminal(nil))
}

func TestIsTerminalRegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("create temp: %v", err)
	}
	defer f.Close()

	assert.False(t, IsTerminal(f))
	_, ok := TerminalWidth(f)
	assert.False(t, ok)
}

func TestColumns(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		fallback int
		want     int
	}{
		{"env wins", "132", 40, 132},
		{"bad env uses fallback", "wide", 40, 40},
		{"zero env uses fallback", "0", 40, 40},
		{"no fallback", "", 0, DefaultColumns},
		{"fallback", "", 60, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("COLUMNS", tt.env)
			assert.Equal(t, tt.want, Columns(&bytes.Buffer{}, tt.fallback))
		})
	}
}

func TestVisibleWidth(t *testing.T) {
	assert.Equal(t, 5, VisibleWidth("hello"))
	assert.Equal(t, 1, VisibleWidth("\x1b[31m⠋\x1b[0m"))
	assert.Equal(t, 4, VisibleWidth("日本"))
}
