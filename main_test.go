package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes termspin with args in a scratch directory and returns
// stdout, stderr and the command error.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
	t.Setenv("COLUMNS", "80")

	var stdout, stderr bytes.Buffer
	root := newRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestListCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := runCLI(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "Interval")
	for _, name := range []string{"dots", "line", "orbit", "comet"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "130ms")
}

func TestListNamesWithGlyphFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "extra.yaml")
	require.NoError(t, os.WriteFile(path, []byte("zzz:\n  interval: 50\n  frames: [a, b]\n"), 0o644))

	out, _, err := runCLI(t, "list", "--names", "--glyphs", path)
	require.NoError(t, err)

	names := strings.Fields(out)
	assert.Contains(t, names, "dots")
	assert.Equal(t, "zzz", names[len(names)-1])
}

func TestConfigFileErrors(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, _, err := runCLI(t, "list", "--config", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile("termspin.yaml", []byte("spinner:\n  side: top\n"), 0o644))
	_, _, err = runCLI(t, "list")
	assert.Error(t, err)

	_, _, err = runCLI(t, "list", "--log-level", "chatty")
	assert.Error(t, err)
}

func TestDemoTour(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := runCLI(t, "demo", "--pace", "1ms", "--spinner", "line", "--timer")
	require.NoError(t, err)

	for _, want := range []string{
		"== basic ==",
		"== finalizers ==",
		"> step 3 complete\n",
		"The spinner is hidden while this line prints.\n",
		"✔ Loading (",
		"Spinning the other way ✔ (",
		"✘ This one fails (",
	} {
		assert.Contains(t, out, want)
	}
}

func TestDemoUnknownSpinner(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := runCLI(t, "demo", "--pace", "1ms", "--spinner", "nope")
	assert.Error(t, err)
}

func TestDemoEverySet(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := runCLI(t, "demo", "--all", "--pace", "1ms")
	require.NoError(t, err)
	assert.Contains(t, out, " orbit")
	assert.Contains(t, out, " moon")
}
