// Package grid holds the tokenized representation of a report's text:
// one row per source line, one cell per whitespace-separated token.
package grid

import (
	"fmt"
	"strings"
)

// Grid is a rectangular table of string tokens. Rows are padded to a
// uniform width at construction time and never mutated afterwards.
type Grid struct {
	rows  [][]string
	width int
}

// New builds a Grid from possibly jagged rows, right-padding every
// short row with empty strings to the maximum row width.
func New(rows [][]string) Grid {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	padded := make([][]string, len(rows))
	for i, row := range rows {
		padded[i] = make([]string, width)
		copy(padded[i], row)
	}

	return Grid{rows: padded, width: width}
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g.rows)
}

// Width returns the number of columns.
func (g Grid) Width() int {
	return g.width
}

// Empty reports whether the grid holds no rows at all.
func (g Grid) Empty() bool {
	return len(g.rows) == 0
}

// At returns the trimmed cell value at the given zero-based position,
// or the empty string when the position is outside the grid.
func (g Grid) At(row, col int) string {
	if row < 0 || row >= len(g.rows) || col < 0 || col >= g.width {
		return ""
	}
	return strings.TrimSpace(g.rows[row][col])
}

// Row returns a copy of the row at the given index, or nil when the
// index is out of range.
func (g Grid) Row(row int) []string {
	if row < 0 || row >= len(g.rows) {
		return nil
	}
	out := make([]string, g.width)
	copy(out, g.rows[row])
	return out
}

// JoinRow joins the non-empty trimmed cells of a row range with single
// spaces. endCol is exclusive; a negative endCol means to the end of
// the row. Out-of-range rows yield the empty string.
func (g Grid) JoinRow(row, startCol, endCol int) string {
	if row < 0 || row >= len(g.rows) {
		return ""
	}
	if startCol < 0 {
		startCol = 0
	}
	if endCol < 0 || endCol > g.width {
		endCol = g.width
	}

	var parts []string
	for col := startCol; col < endCol; col++ {
		cell := strings.TrimSpace(g.rows[row][col])
		if cell != "" {
			parts = append(parts, cell)
		}
	}
	return strings.Join(parts, " ")
}

// Columns returns synthetic column labels "Col1".."ColN" matching the
// grid width.
func (g Grid) Columns() []string {
	cols := make([]string, g.width)
	for i := range cols {
		cols[i] = fmt.Sprintf("Col%d", i+1)
	}
	return cols
}
