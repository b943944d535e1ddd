package survey

// Pipe table layouts for the fixed report template. The source
// document lists incoming pipes in a seven-row block and outgoing
// pipes in a two-row block further down the page; both spell the pipe
// size across three tokens (width, separator, height) that are joined
// into a single field.

var incomingLayout = blockLayout{
	region: block{top: 63, bottom: 70, left: 0, right: 11},
	columns: []blockColumn{
		{name: "ID", src: []int{0}},
		{name: "UPSTREAM REFERENCE", src: []int{1}},
		{name: "PIPE SHAPE", src: []int{2}},
		{name: "PIPE SIZE (mm)", src: []int{3, 4, 5}},
		{name: "BACKDROP DIAM (mm)", src: []int{6}},
		{name: "PIPE MATERIAL", src: []int{7}},
		{name: "LINING", src: []int{8}},
		{name: "DEPTH FROM COVER (m)", src: []int{9}},
		{name: "INVERT LEVEL (m AD)", src: []int{10}},
	},
}

var outgoingLayout = blockLayout{
	region: block{top: 83, bottom: 85, left: 0, right: 12},
	columns: []blockColumn{
		{name: "ID", src: []int{0}},
		{name: "UPSTREAM REFERENCE", src: []int{1}},
		{name: "PIPE SHAPE", src: []int{2}},
		{name: "PIPE SIZE (mm)", src: []int{3, 4, 5}},
		{name: "COND", src: []int{6}},
		{name: "CRITY", src: []int{7}},
		{name: "PIPE MATERIAL", src: []int{8}},
		{name: "LINING", src: []int{9}},
		{name: "DEPTH FROM COVER (m)", src: []int{10}},
		{name: "INVERT LEVEL (m AD)", src: []int{11}},
	},
}
