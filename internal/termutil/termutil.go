// Package termutil inspects the spinner's output: whether it is a terminal
// and how many columns it offers.
package termutil

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// DefaultColumns is used when the width of the output cannot be determined.
const DefaultColumns = 80

type fdProvider interface {
	Fd() uintptr
}

// IsTerminal reports whether w is attached to an interactive terminal.
// Writers without a file descriptor (buffers, pipes wrapped in bufio, ...)
// are never terminals.
func IsTerminal(w io.Writer) bool {
	v, ok := w.(fdProvider)
	if !ok {
		return false
	}
	fd := v.Fd()
	return term.IsTerminal(int(fd)) || isatty.IsCygwinTerminal(fd)
}

// TerminalWidth returns the column count of the terminal behind w.
func TerminalWidth(w io.Writer) (int, bool) {
	if v, ok := w.(fdProvider); ok {
		if cols, _, err := term.GetSize(int(v.Fd())); err == nil && cols > 0 {
			return cols, true
		}
	}
	return 0, false
}

// Columns resolves the usable width for w. The COLUMNS environment variable
// wins, then the terminal size, then fallback.
func Columns(w io.Writer, fallback int) int {
	if env := strings.TrimSpace(os.Getenv("COLUMNS")); env != "" {
		if n, err := strconv.Atoi(env); err == nil && n > 0 {
			return n
		}
	}
	if cols, ok := TerminalWidth(w); ok {
		return cols
	}
	if fallback > 0 {
		return fallback
	}
	return DefaultColumns
}

// VisibleWidth is the number of cells s occupies once escape sequences are
// interpreted by the terminal.
func VisibleWidth(s string) int {
	return ansi.StringWidth(s)
}
