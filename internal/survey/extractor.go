package survey

import (
	"log/slog"

	"github.com/hydronode/surveyextract/internal/grid"
)

// Extractor derives the three field tables and the node reference from
// a report's token grid. Extraction is stateless: every call returns a
// freshly allocated table and never mutates the grid.
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor creates an extractor logging through the given logger.
func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// IncomingPipes extracts the incoming pipe table. An undersized grid
// yields the fixed schema with zero rows.
func (e *Extractor) IncomingPipes(g grid.Grid) Table {
	if !incomingLayout.region.fits(g) {
		e.logger.Warn("grid too small for incoming pipe extraction",
			"rows", g.Height(), "cols", g.Width())
	}
	return incomingLayout.extract(g)
}

// OutgoingPipes extracts the outgoing pipe table. An undersized grid
// yields the fixed schema with zero rows.
func (e *Extractor) OutgoingPipes(g grid.Grid) Table {
	if !outgoingLayout.region.fits(g) {
		e.logger.Warn("grid too small for outgoing pipe extraction",
			"rows", g.Height(), "cols", g.Width())
	}
	return outgoingLayout.extract(g)
}
