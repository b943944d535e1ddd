package survey

import (
	"github.com/hydronode/surveyextract/internal/grid"
)

// Location details are not a rectangular block: each labeled component
// lives at its own fixed grid position, some spanning several cells on
// a row. The order below is the order of the output table.
var locationFields = []field{
	{"Node Reference", cellAt{8, 2}},
	{"Coordinates X", coordPart{9, 2, 0}},
	{"Coordinates Y", coordPart{9, 2, 1}},
	{"Location", rowSpan{10, 1, -1}},
	{"Drainage Area Code", cellAt{12, 1}},
	{"Survey Date", rowSpan{13, 2, -1}},
	{"Year Laid", cellAt{15, 2}},
	{"Status", cellAt{15, 4}},
	{"Function", cellAt{15, 6}},
	{"Node Type", cellAt{16, 1}},
	{"Cover Shape", cellAt{19, 2}},
	{"Hinged", cellAt{19, 4}},
	{"Lock", cellAt{19, 6}},
	{"Duty", cellAt{19, 8}},
	{"Cover Size", rowSpan{19, 9, -1}},
	{"Side Entry", cellAt{26, 1}},
	{"Reg Course", cellAt{27, 1}},
	{"Depth", cellAt{28, 1}},
	{"Shaft Size", rowSpan{28, 2, 5}},
	{"Soffit", cellAt{30, 2}},
	{"Steps", cellAt{32, 0}},
	{"Ladders", cellAt{34, 1}},
	{"Landings", cellAt{34, 3}},
	{"Chamber Size", rowSpan{34, 4, 7}},
	{"Depth of Flow (mm)", cellAt{38, 2}},
	{"Depth of Silt (mm)", cellAt{39, 2}},
	{"Surch Height (mm)", cellAt{44, 0}},
	{"Cover Level (m AD)", cellAt{47, 2}},
	{"Notes", joined{locs: []locator{cellAt{95, 0}, rowSpan{96, 0, -1}}}},
}

var locationColumns = []string{"COMPONENTS", "VALUE"}

// LocationDetails extracts the general chamber details as a
// (component, value) table in a fixed order. Positions outside the
// grid resolve to empty values rather than dropping the component, so
// the row set is as constant as the column schema.
func (e *Extractor) LocationDetails(g grid.Grid) Table {
	if g.Empty() {
		e.logger.Warn("grid empty, location details will be blank")
	}

	t := Table{Columns: locationColumns}
	for _, f := range locationFields {
		t.Rows = append(t.Rows, []string{f.label, f.loc.value(g)})
	}
	return t
}
