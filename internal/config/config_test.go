package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "termspin.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
spinner:
  name: line
  text: Building
  color: cyan
  attrs: [bold, underline]
  side: right
  timer: true
  interval_ms: 120
log:
  level: debug
glyph_file: extra.toml
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "line", cfg.Spinner.Name)
	assert.Equal(t, "Building", cfg.Spinner.Text)
	assert.Equal(t, "cyan", cfg.Spinner.Color)
	assert.Equal(t, []string{"bold", "underline"}, cfg.Spinner.Attrs)
	assert.Equal(t, "right", cfg.Spinner.Side)
	assert.True(t, cfg.Spinner.Timer)
	assert.Equal(t, 120, cfg.Spinner.IntervalMS)
	assert.Equal(t, DefaultEllipsis, cfg.Spinner.Ellipsis)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "extra.toml", cfg.GlyphFile)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "spinner: [unclosed"},
		{"bad side", "spinner:\n  side: top\n"},
		{"bad level", "log:\n  level: verbose\n"},
		{"negative interval", "spinner:\n  interval_ms: -5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = LoadOrDefault("missing.yaml")
	assert.Error(t, err, "an explicit path must exist")
}

func TestExampleConfigLoads(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "termspin.example.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSpinner, cfg.Spinner.Name)
	assert.Equal(t, []string{"bold"}, cfg.Spinner.Attrs)
}
