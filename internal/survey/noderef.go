package survey

import (
	"regexp"

	"github.com/hydronode/surveyextract/internal/grid"
)

// UnknownNodeRef is the sentinel used when every lookup strategy fails.
const UnknownNodeRef = "UNKNOWN_NODE"

// nodeRefCell is where the template places the node reference.
var nodeRefCell = cellAt{8, 2}

// nodeRefShape is a light sanity check on a positional hit: node
// references are plain alphanumeric codes, so anything else means the
// template has shifted and the cell holds unrelated text.
var nodeRefShape = regexp.MustCompile(`^[A-Z0-9]+$`)

// nodeRefScan recovers the reference from free text when the fixed
// position is empty or shifted.
var nodeRefScan = regexp.MustCompile(`NODE REFERENCE\s*([A-Z0-9]+)`)

// NodeReference resolves the report's node reference. Strategies are
// tried in order: the fixed grid position, then a pattern scan over
// the first page's text, then the sentinel. firstPage is only invoked
// when the positional lookup misses; it may be nil.
func (e *Extractor) NodeReference(g grid.Grid, firstPage func() string) string {
	strategies := []func() string{
		func() string {
			v := nodeRefCell.value(g)
			if v != "" && !nodeRefShape.MatchString(v) {
				e.logger.Warn("node reference cell failed shape check", "value", v)
				return ""
			}
			return v
		},
		func() string {
			if firstPage == nil {
				return ""
			}
			if m := nodeRefScan.FindStringSubmatch(firstPage()); m != nil {
				return m[1]
			}
			return ""
		},
	}

	for _, strategy := range strategies {
		if v := strategy(); v != "" {
			return v
		}
	}

	e.logger.Warn("node reference not found, using sentinel")
	return UnknownNodeRef
}
