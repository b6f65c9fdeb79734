// Package printer formats the lines termspin prints above a running spinner.
package printer

import (
	"github.com/fatih/color"
)

// Source names where a forwarded line came from.
type Source string

const (
	SourceStdout Source = "stdout"
	SourceStderr Source = "stderr"
)

var (
	dim     = color.New(color.Faint)
	red     = color.New(color.FgRed)
	heading = color.New(color.Bold, color.FgBlue)
)

// Line formats a line of child process output. Stderr lines are tagged and
// dimmed red so they stand out from stdout.
// Colors follow fatih/color's global switch, so redirected output stays plain.
func Line(src Source, line string) string {
	if src == SourceStderr {
		return red.Sprint("stderr:") + " " + dim.Sprint(line)
	}
	return line
}

// Heading formats a section title of the demo.
func Heading(title string) string {
	return heading.Sprint("== " + title + " ==")
}
