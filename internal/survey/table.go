package survey

// Table is a fixed-schema tabular result produced by one extractor.
// Columns never varies for a given extractor, even when the source
// grid is too small to yield any rows.
type Table struct {
	Columns []string
	Rows    [][]string
}

// NumRows returns the number of body rows.
func (t Table) NumRows() int {
	return len(t.Rows)
}
