// Package pdf turns one survey report PDF into the token grid the
// field extractors consume, and validates files before they enter the
// pipeline.
package pdf

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/hydronode/surveyextract/internal/grid"
)

// Reader extracts the raw token grid from a PDF file.
type Reader struct {
	maxTextSize int
	logger      *slog.Logger
}

// NewReader creates a new PDF reader logging through the given logger.
func NewReader(logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{
		maxTextSize: 10 * 1024 * 1024, // 10MB text limit
		logger:      logger,
	}
}

// ReadGrid extracts every page's text lines in document order, splits
// each line into whitespace tokens, and returns the padded grid: one
// grid row per text row of the source. Pages without extractable text
// contribute no rows. When the document cannot be opened at all, the
// error is logged and an empty grid is returned; callers treat an
// empty grid as nothing to process.
func (r *Reader) ReadGrid(path string) grid.Grid {
	f, pdfReader, err := pdf.Open(path)
	if err != nil {
		r.logger.Error("failed to open PDF", "path", path, "error", err)
		return grid.New(nil)
	}
	defer f.Close()

	var rows [][]string
	totalLength := 0

pages:
	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		lines, err := pageLines(pdfReader, pageNum)
		if err != nil {
			// Continue with other pages even if one fails
			r.logger.Warn("page text extraction failed",
				"path", path, "page", pageNum, "error", err)
			continue
		}

		for _, line := range lines {
			totalLength += len(line)
			if totalLength > r.maxTextSize {
				r.logger.Warn("text limit reached, truncating document",
					"path", path, "page", pageNum)
				break pages
			}
			rows = append(rows, strings.Fields(line))
		}
	}

	return grid.New(rows)
}

// FirstPageText returns the text of page one with lines separated by
// newlines, or the empty string when the document or page cannot be
// read. Used as the source for pattern-based node reference recovery.
func (r *Reader) FirstPageText(path string) string {
	f, pdfReader, err := pdf.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	if pdfReader.NumPage() < 1 {
		return ""
	}

	lines, err := pageLines(pdfReader, 1)
	if err != nil {
		return ""
	}
	return strings.Join(lines, "\n")
}

// pageLines extracts one page's text lines in reading order. The
// library's plain-text accessor concatenates text runs with no
// separators, losing line structure entirely, so lines are rebuilt
// from positioned text instead: runs grouped by row, ordered
// horizontally, concatenated per row. Library panics on malformed
// content streams are converted into errors.
func pageLines(pdfReader *pdf.Reader, pageNum int) (lines []string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("page %d extraction panicked: %v", pageNum, p)
		}
	}()

	page := pdfReader.Page(pageNum)
	if page.V.IsNull() {
		return nil, nil
	}

	textRows, err := page.GetTextByRow()
	if err != nil {
		return nil, err
	}

	for _, row := range textRows {
		var b strings.Builder
		for _, text := range row.Content {
			b.WriteString(text.S)
		}
		lines = append(lines, b.String())
	}
	return lines, nil
}
