package grid

import (
	"testing"
)

func TestNew_PadsJaggedRows(t *testing.T) {
	g := New([][]string{
		{"a", "b"},
		{"c", "d", "e", "f", "g"},
		{"h", "i", "j"},
	})

	if g.Height() != 3 {
		t.Fatalf("expected 3 rows, got %d", g.Height())
	}
	if g.Width() != 5 {
		t.Fatalf("expected width 5, got %d", g.Width())
	}

	for rowIdx := 0; rowIdx < g.Height(); rowIdx++ {
		row := g.Row(rowIdx)
		if len(row) != 5 {
			t.Errorf("row %d: expected length 5, got %d", rowIdx, len(row))
		}
	}

	// Trailing cells of the short rows pad to empty string.
	if got := g.At(0, 4); got != "" {
		t.Errorf("expected padded cell to be empty, got %q", got)
	}
	if got := g.At(2, 3); got != "" {
		t.Errorf("expected padded cell to be empty, got %q", got)
	}
	if got := g.At(1, 4); got != "g" {
		t.Errorf("expected full row to keep its cells, got %q", got)
	}
}

func TestNew_EmptyInput(t *testing.T) {
	g := New(nil)

	if !g.Empty() {
		t.Error("expected empty grid")
	}
	if g.Height() != 0 || g.Width() != 0 {
		t.Errorf("expected 0x0 grid, got %dx%d", g.Height(), g.Width())
	}
	if cols := g.Columns(); len(cols) != 0 {
		t.Errorf("expected no column labels, got %v", cols)
	}
}

func TestGrid_At(t *testing.T) {
	g := New([][]string{
		{" padded ", "plain"},
		{"x"},
	})

	tests := []struct {
		name     string
		row, col int
		expected string
	}{
		{"trims whitespace", 0, 0, "padded"},
		{"plain cell", 0, 1, "plain"},
		{"padded cell", 1, 1, ""},
		{"row out of range", 5, 0, ""},
		{"col out of range", 0, 9, ""},
		{"negative row", -1, 0, ""},
		{"negative col", 0, -1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.At(tt.row, tt.col); got != tt.expected {
				t.Errorf("At(%d, %d) = %q, expected %q", tt.row, tt.col, got, tt.expected)
			}
		})
	}
}

func TestGrid_JoinRow(t *testing.T) {
	g := New([][]string{
		{"NODE", "REF", "AB123", "", "extra"},
		{"", "", ""},
	})

	tests := []struct {
		name              string
		row, start, end   int
		expected          string
	}{
		{"full row", 0, 0, -1, "NODE REF AB123 extra"},
		{"sub range", 0, 1, 3, "REF AB123"},
		{"empty cells drop out", 0, 2, 5, "AB123 extra"},
		{"all empty row", 1, 0, -1, ""},
		{"row out of range", 7, 0, -1, ""},
		{"end beyond width", 0, 3, 99, "extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.JoinRow(tt.row, tt.start, tt.end); got != tt.expected {
				t.Errorf("JoinRow(%d, %d, %d) = %q, expected %q",
					tt.row, tt.start, tt.end, got, tt.expected)
			}
		})
	}
}

func TestGrid_Columns(t *testing.T) {
	g := New([][]string{{"a", "b", "c"}})

	cols := g.Columns()
	expected := []string{"Col1", "Col2", "Col3"}
	if len(cols) != len(expected) {
		t.Fatalf("expected %d columns, got %d", len(expected), len(cols))
	}
	for i, col := range cols {
		if col != expected[i] {
			t.Errorf("column %d: expected %q, got %q", i, expected[i], col)
		}
	}
}

func TestGrid_RowReturnsCopy(t *testing.T) {
	g := New([][]string{{"a", "b"}})

	row := g.Row(0)
	row[0] = "mutated"

	if g.At(0, 0) != "a" {
		t.Error("mutating a returned row must not affect the grid")
	}
}
