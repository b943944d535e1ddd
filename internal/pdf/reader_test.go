package pdf

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hydronode/surveyextract/internal/pdftest"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewReader_DefaultLogger(t *testing.T) {
	r := NewReader(nil)
	if r.logger == nil {
		t.Fatal("expected a default logger")
	}
}

func TestReader_ReadGrid_UnreadableFile(t *testing.T) {
	tempDir := t.TempDir()

	garbagePath := filepath.Join(tempDir, "garbage.pdf")
	if err := os.WriteFile(garbagePath, []byte("not a pdf at all"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"non-existent file", filepath.Join(tempDir, "missing.pdf")},
		{"garbage content", garbagePath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewReader(quietLogger()).ReadGrid(tt.path)
			if !g.Empty() {
				t.Errorf("expected empty grid for unreadable file, got %d rows", g.Height())
			}
		})
	}
}

func TestReader_ReadGrid_LogsOpenFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	NewReader(logger).ReadGrid("/non/existent/report.pdf")

	if !strings.Contains(buf.String(), "failed to open PDF") {
		t.Errorf("expected open failure to be logged, got: %s", buf.String())
	}
}

func TestReader_ReadGrid_OneRowPerLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	lines := []string{
		"NODE REFERENCE SK455601",
		"DATE 12/03/2024",
		"SURVEYED BY J SMITH",
	}
	if err := pdftest.WriteFile(path, lines); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	g := NewReader(quietLogger()).ReadGrid(path)

	// Each text row of the page becomes one grid row; adjacent rows
	// must not collapse into each other.
	if g.Height() != 3 {
		t.Fatalf("expected 3 rows, got %d", g.Height())
	}

	tests := []struct {
		row, col int
		expected string
	}{
		{0, 0, "NODE"},
		{0, 1, "REFERENCE"},
		{0, 2, "SK455601"},
		{1, 0, "DATE"},
		{1, 1, "12/03/2024"},
		{2, 0, "SURVEYED"},
		{2, 2, "J"},
		{2, 3, "SMITH"},
		{1, 3, ""}, // padding on the narrower row
	}
	for _, tt := range tests {
		if got := g.At(tt.row, tt.col); got != tt.expected {
			t.Errorf("At(%d, %d) = %q, expected %q", tt.row, tt.col, got, tt.expected)
		}
	}
}

func TestReader_ReadGrid_TextFreeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.pdf")
	if err := pdftest.WriteFile(path, nil); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	g := NewReader(quietLogger()).ReadGrid(path)
	if !g.Empty() {
		t.Errorf("expected empty grid for text-free PDF, got %d rows", g.Height())
	}
}

func TestReader_FirstPageText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	lines := []string{
		"MANHOLE SURVEY REPORT",
		"NODE REFERENCE SK455601",
	}
	if err := pdftest.WriteFile(path, lines); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	got := NewReader(quietLogger()).FirstPageText(path)

	// Word and line boundaries survive, so downstream pattern matching
	// can find labelled values.
	if !strings.Contains(got, "NODE REFERENCE SK455601") {
		t.Errorf("expected labelled node reference in page text, got %q", got)
	}
	if !strings.Contains(got, "REPORT\nNODE") {
		t.Errorf("expected newline between text rows, got %q", got)
	}
}

func TestReader_FirstPageText_UnreadableFile(t *testing.T) {
	r := NewReader(quietLogger())

	if got := r.FirstPageText("/non/existent/report.pdf"); got != "" {
		t.Errorf("expected empty text for unreadable file, got %q", got)
	}
}
