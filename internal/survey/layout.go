// Package survey maps the token grid of a fixed-layout manhole survey
// report onto named field tables. All positions are zero-based grid
// offsets specific to one report template; they are collected into
// declarative layout values here rather than scattered through the
// extraction code.
package survey

import (
	"strings"

	"github.com/hydronode/surveyextract/internal/grid"
)

// block is a rectangular region of the grid. Row and column bounds
// are half-open: rows [top, bottom), columns [left, right).
type block struct {
	top, bottom int
	left, right int
}

// fits reports whether the grid is large enough to contain the block.
// This is the single bounds check shared by every block extractor.
func (b block) fits(g grid.Grid) bool {
	return !g.Empty() && g.Height() >= b.bottom && g.Width() >= b.right
}

// blockColumn maps one output column onto source column offsets within
// a block. A single offset copies the cell; multiple offsets join the
// trimmed non-empty cells with single spaces.
type blockColumn struct {
	name string
	src  []int
}

// blockLayout describes a row-per-entity table: a block plus the
// ordered output columns derived from it.
type blockLayout struct {
	region  block
	columns []blockColumn
}

// schema returns the output column names in order.
func (l blockLayout) schema() []string {
	names := make([]string, len(l.columns))
	for i, col := range l.columns {
		names[i] = col.name
	}
	return names
}

// extract reshapes the block into a Table. When the grid is smaller
// than the block, it returns the schema with zero rows.
func (l blockLayout) extract(g grid.Grid) Table {
	t := Table{Columns: l.schema()}
	if !l.region.fits(g) {
		return t
	}

	for row := l.region.top; row < l.region.bottom; row++ {
		out := make([]string, len(l.columns))
		for i, col := range l.columns {
			out[i] = l.cellValue(g, row, col)
		}
		t.Rows = append(t.Rows, out)
	}
	return t
}

func (l blockLayout) cellValue(g grid.Grid, row int, col blockColumn) string {
	if len(col.src) == 1 {
		return g.At(row, l.region.left+col.src[0])
	}

	var parts []string
	for _, src := range col.src {
		if cell := g.At(row, l.region.left+src); cell != "" {
			parts = append(parts, cell)
		}
	}
	return strings.Join(parts, " ")
}

// locator resolves one scalar value out of the grid. Locators always
// yield the empty string when their position falls outside the grid.
type locator interface {
	value(g grid.Grid) string
}

// cellAt locates a single cell.
type cellAt struct {
	row, col int
}

func (l cellAt) value(g grid.Grid) string {
	return g.At(l.row, l.col)
}

// rowSpan locates a joined range of cells on one row. A negative end
// column means to the end of the row.
type rowSpan struct {
	row, startCol, endCol int
}

func (l rowSpan) value(g grid.Grid) string {
	return g.JoinRow(l.row, l.startCol, l.endCol)
}

// coordPart locates one half of a comma-separated coordinate pair.
type coordPart struct {
	row, col, part int
}

func (l coordPart) value(g grid.Grid) string {
	x, y := splitCoordinates(g.At(l.row, l.col))
	if l.part == 0 {
		return x
	}
	return y
}

// joined concatenates the non-empty results of several locators with
// single spaces.
type joined struct {
	locs []locator
}

func (l joined) value(g grid.Grid) string {
	var parts []string
	for _, loc := range l.locs {
		if v := loc.value(g); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

// splitCoordinates splits a coordinate cell like "123456, 654321" into
// its X and Y components. Text without a comma yields two empty
// strings rather than a partial result.
func splitCoordinates(text string) (x, y string) {
	if !strings.Contains(text, ",") {
		return "", ""
	}
	parts := strings.Split(text, ",")
	if len(parts) < 2 {
		return "", ""
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}

// field pairs a component label with the locator that resolves it.
type field struct {
	label string
	loc   locator
}
