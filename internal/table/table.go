// Package table provides utilities for rendering formatted tables in the
// terminal. Widths are display columns, so wide glyphs line up.
package table

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Column represents a table column with its configuration.
type Column struct {
	Header   string
	MinWidth int
	MaxWidth int
	Align    Alignment
}

// Alignment specifies how content should be aligned within a column.
type Alignment int

const (
	// AlignLeft aligns content to the left.
	AlignLeft Alignment = iota
	// AlignRight aligns content to the right.
	AlignRight
)

// Table represents a table with columns and rows.
type Table struct {
	columns []Column
	rows    [][]string
	widths  []int
}

// New creates a new table with the specified columns.
func New(columns ...Column) *Table {
	t := &Table{
		columns: columns,
		widths:  make([]int, len(columns)),
	}

	// Initialize widths with header lengths and minimum widths
	for i, col := range columns {
		t.widths[i] = runewidth.StringWidth(col.Header)
		if col.MinWidth > t.widths[i] {
			t.widths[i] = col.MinWidth
		}
	}

	return t
}

// AddRow adds a row of values to the table.
func (t *Table) AddRow(values ...string) {
	// Ensure we have the right number of values
	row := make([]string, len(t.columns))
	for i := range t.columns {
		if i < len(values) {
			row[i] = values[i]
		}
	}

	// Update column widths based on content
	for i, val := range row {
		t.widths[i] = max(t.widths[i], runewidth.StringWidth(val))
	}

	t.rows = append(t.rows, row)
}

// calculateFinalWidths applies max width constraints and returns final widths.
func (t *Table) calculateFinalWidths() []int {
	widths := make([]int, len(t.widths))
	copy(widths, t.widths)

	for i, col := range t.columns {
		if col.MaxWidth > 0 && widths[i] > col.MaxWidth {
			widths[i] = col.MaxWidth
		}
	}

	return widths
}

// truncate truncates a string to the specified width, adding ellipsis if needed.
func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

// formatCell formats a cell value according to column width and alignment.
func formatCell(value string, width int, align Alignment) string {
	value = truncate(value, width)
	switch align {
	case AlignRight:
		return runewidth.FillLeft(value, width)
	default:
		return runewidth.FillRight(value, width)
	}
}

var headerStyle = color.New(color.Bold)

// RenderHeader returns the formatted header row.
func (t *Table) RenderHeader() string {
	widths := t.calculateFinalWidths()
	var parts []string

	for i, col := range t.columns {
		parts = append(parts, formatCell(col.Header, widths[i], col.Align))
	}

	return headerStyle.Sprint(strings.Join(parts, " │ "))
}

// RenderSeparator returns the separator line between header and rows.
func (t *Table) RenderSeparator() string {
	widths := t.calculateFinalWidths()
	var parts []string

	for _, w := range widths {
		parts = append(parts, strings.Repeat("─", w))
	}

	return strings.Join(parts, "─┼─")
}

// RenderRow returns a formatted row at the specified index.
func (t *Table) RenderRow(index int) string {
	return t.renderRow(index, -1, nil)
}

// renderRow formats a row, passing the cell in column hl through style.
func (t *Table) renderRow(index, hl int, style *color.Color) string {
	if index < 0 || index >= len(t.rows) {
		return ""
	}

	widths := t.calculateFinalWidths()
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		parts[i] = formatCell(t.rows[index][i], widths[i], col.Align)
		if i == hl && style != nil {
			parts[i] = style.Sprint(parts[i])
		}
	}

	return strings.Join(parts, " │ ")
}

// RowCount returns the number of rows in the table.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// Render returns the complete table as a string.
func (t *Table) Render() string {
	var lines []string

	lines = append(lines, t.RenderHeader())
	lines = append(lines, t.RenderSeparator())

	for i := range t.rows {
		lines = append(lines, t.RenderRow(i))
	}

	return strings.Join(lines, "\n")
}

// PrintOptions configures how the table is printed.
type PrintOptions struct {
	// Indent is the prefix added to each line (e.g., "  " for two-space indent).
	Indent string
	// HighlightColumn is the index of the column to highlight (0-based), or -1 for none.
	HighlightColumn int
	// HighlightColor is the color of the highlighted column.
	HighlightColor color.Attribute
	// Writer is the output destination. Defaults to os.Stdout if nil.
	Writer io.Writer
}

// DefaultPrintOptions returns default print options.
func DefaultPrintOptions() PrintOptions {
	return PrintOptions{
		Indent:          "  ",
		HighlightColumn: -1,
		HighlightColor:  color.FgYellow,
		Writer:          os.Stdout,
	}
}

// Print outputs the table to the configured writer with the specified options.
func (t *Table) Print(opts PrintOptions) {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s%s\n", opts.Indent, t.RenderHeader())
	fmt.Fprintf(w, "%s%s\n", opts.Indent, t.RenderSeparator())

	highlight := color.New(opts.HighlightColor)
	for i := range t.rows {
		fmt.Fprintf(w, "%s%s\n", opts.Indent, t.renderRow(i, opts.HighlightColumn, highlight))
	}
	fmt.Fprintln(w)
}
