// Package batch walks an input directory tree and runs the per-file
// extraction pipeline over every PDF report it finds.
package batch

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hydronode/surveyextract/internal/pdf"
	"github.com/hydronode/surveyextract/internal/survey"
	"github.com/hydronode/surveyextract/internal/workbook"
)

// ErrNoText marks a PDF whose pages yielded no extractable text.
// Such files produce no workbook and are recorded as failed so the
// batch summary never understates the failure count.
var ErrNoText = errors.New("no extractable text in PDF")

// Failure records one input file whose pipeline failed.
type Failure struct {
	Path string
	Err  error
}

// Result summarizes one batch run.
type Result struct {
	Processed []string
	Failures  []Failure
}

// AllSucceeded reports whether every discovered file was processed.
func (r *Result) AllSucceeded() bool {
	return len(r.Failures) == 0
}

// FailedPaths returns the input paths of all failures, in discovery
// order.
func (r *Result) FailedPaths() []string {
	paths := make([]string, len(r.Failures))
	for i, f := range r.Failures {
		paths[i] = f.Path
	}
	return paths
}

// Runner orchestrates the per-file pipeline: validate, read the token
// grid, extract the field tables, write the workbook. Files are
// processed strictly one at a time; no state is shared between them.
type Runner struct {
	validator *pdf.Validator
	reader    *pdf.Reader
	extractor *survey.Extractor
	writer    *workbook.Writer
	logger    *slog.Logger
}

// NewRunner creates a batch runner.
func NewRunner(maxFileSize int64, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		validator: pdf.NewValidator(maxFileSize),
		reader:    pdf.NewReader(logger),
		extractor: survey.NewExtractor(logger),
		writer:    workbook.NewWriter(),
		logger:    logger,
	}
}

// Run discovers every ".pdf" file (case-insensitive) under inputDir,
// runs the pipeline on each, and writes one workbook per input into
// outputDir, flat, named after the input's stem. A failure on one
// file never aborts its siblings: every per-file error is logged and
// recorded in the result. Run itself only fails when the output
// directory cannot be created or the input tree cannot be walked at
// all.
func (r *Runner) Run(inputDir, outputDir string) (*Result, error) {
	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return nil, fmt.Errorf("cannot create output directory %s: %w", outputDir, err)
	}

	result := &Result{}
	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Keep walking past unreadable entries.
			r.logger.Warn("skipping unreadable entry", "path", path, "error", err)
			return nil
		}
		if d.IsDir() || !isPDF(path) {
			return nil
		}

		outPath := outputPath(outputDir, path)
		r.logger.Info("processing", "input", path, "output", outPath)

		if err := r.processFile(path, outPath); err != nil {
			r.logger.Error("processing failed", "path", path, "error", err)
			result.Failures = append(result.Failures, Failure{Path: path, Err: err})
			return nil
		}

		result.Processed = append(result.Processed, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk input directory %s: %w", inputDir, err)
	}

	return result, nil
}

// processFile runs the single-file pipeline.
func (r *Runner) processFile(inPath, outPath string) error {
	if err := r.validator.ValidateFile(inPath); err != nil {
		return err
	}

	g := r.reader.ReadGrid(inPath)
	if g.Empty() {
		return ErrNoText
	}

	report := workbook.Report{
		Raw:      g,
		Location: r.extractor.LocationDetails(g),
		Incoming: r.extractor.IncomingPipes(g),
		Outgoing: r.extractor.OutgoingPipes(g),
		NodeRef: r.extractor.NodeReference(g, func() string {
			return r.reader.FirstPageText(inPath)
		}),
	}

	return r.writer.Write(outPath, report)
}

// isPDF reports whether the file name carries a ".pdf" extension in
// any casing.
func isPDF(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}

// outputPath derives the workbook path: same stem as the input, xlsx
// extension, flat in the output directory.
func outputPath(outputDir, inPath string) string {
	base := filepath.Base(inPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outputDir, stem+".xlsx")
}
