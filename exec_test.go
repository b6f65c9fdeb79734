//go:build unix

package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecSuccess(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := runCLI(t, "exec", "--text", "building", "--", "sh", "-c", "echo compiled")
	require.NoError(t, err)

	assert.Contains(t, out, "compiled\n")
	assert.True(t, strings.HasSuffix(out, "✔ building\n"), "got %q", out)
}

func TestExecFailurePropagatesStatus(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := runCLI(t, "exec", "--", "sh", "-c", "echo hi; echo oops 1>&2; exit 3")

	var exitErr *exitCodeError
	require.True(t, errors.As(err, &exitErr), "got %v", err)
	assert.Equal(t, 3, exitErr.code)

	assert.Contains(t, out, "hi\n")
	assert.Contains(t, out, "stderr: oops\n")
	assert.Contains(t, out, "✘ sh -c echo hi; echo oops 1>&2; exit 3\n")
}

func TestExecMissingBinary(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := runCLI(t, "exec", "--", "termspin-no-such-binary")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start")
}
