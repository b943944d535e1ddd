// Package pdftest builds small single-page PDF files for tests. The
// files carry a classic cross-reference table with byte-exact offsets
// so both strict validators and text extractors accept them.
package pdftest

import (
	"fmt"
	"os"
	"strings"
)

// WriteFile writes a one-page PDF to path showing the given text
// lines top to bottom, one text object per line. An empty or nil
// lines slice produces a valid PDF with no text content.
func WriteFile(path string, lines []string) error {
	var content strings.Builder
	y := 760
	for _, line := range lines {
		fmt.Fprintf(&content, "BT /F1 9 Tf 40 %d Td (%s) Tj ET\n", y, escapeString(line))
		y -= 7
	}

	// Explicit glyph widths keep the extracted runs at distinct
	// horizontal positions, which row-ordered extraction relies on.
	widths := strings.TrimSpace(strings.Repeat("500 ", 95))

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] " +
			"/Resources << /Font << /F1 5 0 R >> >> /Contents 4 0 R >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", content.Len(), content.String()),
		fmt.Sprintf("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica "+
			"/FirstChar 32 /LastChar 126 /Widths [%s] >>", widths),
	}

	var buf strings.Builder
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects)+1)
	for i, obj := range objects {
		offsets[i+1] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= len(objects); i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(objects)+1, xrefOffset)

	return os.WriteFile(path, []byte(buf.String()), 0o644)
}

func escapeString(s string) string {
	return strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`).Replace(s)
}
