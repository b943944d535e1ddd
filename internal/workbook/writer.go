// Package workbook persists one report's extracted tables as a
// multi-sheet xlsx file.
package workbook

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/hydronode/surveyextract/internal/grid"
	"github.com/hydronode/surveyextract/internal/survey"
)

const (
	sheetRawData  = "Raw Data"
	sheetLocation = "Location Details"
	sheetIncoming = "Incoming Pipes"
	sheetOutgoing = "Outgoing Pipes"

	nodeRefLabel = "Node Reference"

	// headerRow is the 1-based worksheet row holding the column
	// headers on field-table sheets; the body starts right below.
	headerRow = 3

	// widthMargin is added to every auto-sized column width.
	widthMargin = 2
)

// Report bundles everything that goes into one workbook.
type Report struct {
	NodeRef  string
	Raw      grid.Grid
	Location survey.Table
	Incoming survey.Table
	Outgoing survey.Table
}

// Writer persists reports as xlsx workbooks.
type Writer struct{}

// NewWriter creates a workbook writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write creates the workbook at path, overwriting any existing file.
// The file is written to a temporary sibling first and renamed into
// place, so a failed write never leaves a truncated workbook behind.
func (w *Writer) Write(path string, report Report) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create bold style: %w", err)
	}

	// The default sheet becomes the raw data sheet.
	if err := f.SetSheetName(f.GetSheetName(0), sheetRawData); err != nil {
		return fmt.Errorf("failed to rename raw data sheet: %w", err)
	}
	if err := writeRawSheet(f, bold, report.Raw); err != nil {
		return err
	}

	fieldSheets := []struct {
		name  string
		table survey.Table
	}{
		{sheetLocation, report.Location},
		{sheetIncoming, report.Incoming},
		{sheetOutgoing, report.Outgoing},
	}
	for _, sheet := range fieldSheets {
		if err := writeFieldSheet(f, bold, sheet.name, sheet.table, report.NodeRef); err != nil {
			return err
		}
	}

	return saveAtomic(f, path)
}

// writeRawSheet lays out the token grid verbatim: synthetic column
// labels on row 1, grid rows below.
func writeRawSheet(f *excelize.File, bold int, g grid.Grid) error {
	if err := writeRow(f, sheetRawData, 1, g.Columns()); err != nil {
		return err
	}
	if err := styleRow(f, sheetRawData, 1, g.Width(), bold); err != nil {
		return err
	}

	for rowIdx := 0; rowIdx < g.Height(); rowIdx++ {
		if err := writeRow(f, sheetRawData, rowIdx+2, g.Row(rowIdx)); err != nil {
			return err
		}
	}

	return sizeColumns(f, sheetRawData, columnWidths(g.Columns(), rowsOf(g)))
}

// writeFieldSheet lays out one field table: the node reference pair on
// row 1, bold headers on row 3, the body from row 4.
func writeFieldSheet(f *excelize.File, bold int, name string, table survey.Table, nodeRef string) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", name, err)
	}

	if err := writeRow(f, name, 1, []string{nodeRefLabel, nodeRef}); err != nil {
		return err
	}
	if err := f.SetCellStyle(name, "A1", "A1", bold); err != nil {
		return fmt.Errorf("failed to style sheet %q: %w", name, err)
	}

	if err := writeRow(f, name, headerRow, table.Columns); err != nil {
		return err
	}
	if err := styleRow(f, name, headerRow, len(table.Columns), bold); err != nil {
		return err
	}

	for rowIdx, row := range table.Rows {
		if err := writeRow(f, name, headerRow+1+rowIdx, row); err != nil {
			return err
		}
	}

	widths := columnWidths(table.Columns, table.Rows)
	// The node reference header occupies columns A and B independently
	// of the table; widen them if the label or value needs it.
	if len(widths) < 2 {
		widths = append(widths, make([]float64, 2-len(widths))...)
	}
	widths[0] = max(widths[0], float64(len(nodeRefLabel)+widthMargin))
	widths[1] = max(widths[1], float64(len(nodeRef)+widthMargin))

	return sizeColumns(f, name, widths)
}

// writeRow writes cell values left to right starting at column A of
// the given 1-based row.
func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	for colIdx, value := range values {
		cell, err := excelize.CoordinatesToCellName(colIdx+1, row)
		if err != nil {
			return fmt.Errorf("invalid cell coordinates (%d, %d): %w", colIdx+1, row, err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to write cell %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

// styleRow applies a style across the first width cells of a row.
func styleRow(f *excelize.File, sheet string, row, width, style int) error {
	if width == 0 {
		return nil
	}
	start, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(width, row)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, start, end, style); err != nil {
		return fmt.Errorf("failed to style sheet %q row %d: %w", sheet, row, err)
	}
	return nil
}

// columnWidths computes per-column widths: the longest cell or header
// length plus a small margin.
func columnWidths(headers []string, rows [][]string) []float64 {
	widths := make([]float64, len(headers))
	for i, h := range headers {
		widths[i] = float64(len(h) + widthMargin)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := float64(len(cell) + widthMargin); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func sizeColumns(f *excelize.File, sheet string, widths []float64) error {
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("invalid column number %d: %w", i+1, err)
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("failed to size column %s!%s: %w", sheet, col, err)
		}
	}
	return nil
}

func rowsOf(g grid.Grid) [][]string {
	rows := make([][]string, g.Height())
	for i := range rows {
		rows[i] = g.Row(i)
	}
	return rows
}

// saveAtomic writes the workbook to a temporary sibling and renames it
// over the target.
func saveAtomic(f *excelize.File, path string) error {
	tmp := path + ".tmp"
	if err := f.SaveAs(tmp); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to move workbook into place: %w", err)
	}
	return nil
}
