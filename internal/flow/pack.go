package flow

// Row is one line of packed elements.
type Row struct {
	// Indices are the input positions of the row's elements, in order.
	Indices []int

	// Offsets are the x-offsets of each element within the row. For normal
	// rows the first offset is the side padding.
	Offsets []float64

	// Frame is the row's bounding box in layout space. Its width includes
	// both side paddings.
	Frame Rect

	// Sizes are the measured sizes, aligned with Indices.
	Sizes []Size

	// FullBleed is set for rows holding a single LargeFullBleed element.
	FullBleed bool
}

// Result is the output of Pack.
type Result struct {
	// Size is the available width and the total height of all rows and
	// the vertical spacing between them.
	Size Size

	// Rows are listed top to bottom in input order.
	Rows []Row
}

// Len returns the number of packed elements.
func (r Result) Len() int {
	n := 0
	for _, row := range r.Rows {
		n += len(row.Indices)
	}
	return n
}

// ProposedWidth returns the width offered to an element with the given
// intent in a container of availableWidth.
func ProposedWidth(intent SizingIntent, availableWidth float64, cfg Config, device DeviceClass) float64 {
	content := availableWidth - 2*cfg.SidePadding
	half := (content - cfg.SpacingHorizontal) / 2

	if intent.IsDynamic() {
		return content
	}

	switch intent.kind {
	case Small:
		if device == Tablet {
			return (content - 3*cfg.SpacingHorizontal) / 4
		}
		return half
	case Medium:
		if device == Tablet {
			return half
		}
		return content
	case Large:
		return content
	case SmallPhoneMediumPad:
		return half
	case LargeFullBleed:
		return availableWidth
	default:
		return content
	}
}

// rowBuilder accumulates the row being filled.
// It lives on the stack of a single Pack call.
type rowBuilder struct {
	indices []int
	offsets []float64
	sizes   []Size
	width   float64 // includes the leading side padding
	height  float64
}

func (b *rowBuilder) empty() bool {
	return len(b.indices) == 0
}

// Pack groups the elements described by intents into rows that fit
// availableWidth.
//
// Elements are visited once, in order. Each is measured at the width its
// intent proposes; a normal element wraps to a new row when appending it
// would push the row (plus trailing side padding) past availableWidth, or
// when idealPerRow > 0 elements are already in the row. LargeFullBleed
// elements close the current row and take a row of their own at offset 0.
// An element that is too wide on its own still gets a row; it is never
// split.
//
// Pack panics if cfg has a negative length or m is nil.
func Pack(availableWidth float64, intents []SizingIntent, m Measurer, cfg Config, device DeviceClass, idealPerRow int) Result {
	if err := cfg.Validate(); err != nil {
		panic("flow: " + err.Error())
	}
	if len(intents) == 0 {
		return Result{Size: Size{Width: availableWidth}}
	}
	if m == nil {
		panic("flow: nil Measurer in Pack")
	}

	var (
		rows   []Row
		totalH float64
		cur    rowBuilder
	)

	finalize := func() {
		if cur.empty() {
			return
		}
		rows = append(rows, Row{
			Indices: cur.indices,
			Offsets: cur.offsets,
			Sizes:   cur.sizes,
			Frame:   NewRect(0, totalH, cur.width+cfg.SidePadding, cur.height),
		})
		totalH += cur.height + cfg.SpacingVertical
		cur = rowBuilder{}
	}

	for i, intent := range intents {
		proposed := ProposedWidth(intent, availableWidth, cfg, device)
		size := m.Measure(i, proposed)

		if intent.IsFullBleed() {
			finalize()
			rows = append(rows, Row{
				Indices:   []int{i},
				Offsets:   []float64{0},
				Sizes:     []Size{size},
				Frame:     NewRect(0, totalH, availableWidth, size.Height),
				FullBleed: true,
			})
			totalH += size.Height + cfg.SpacingVertical
			continue
		}

		if !cur.empty() {
			extra := size.Width + cfg.SpacingHorizontal
			overflow := cur.width+extra+cfg.SidePadding > availableWidth
			full := idealPerRow > 0 && len(cur.indices) >= idealPerRow
			if overflow || full {
				finalize()
			}
		}

		var offset float64
		if cur.empty() {
			offset = cfg.SidePadding
			cur.width = cfg.SidePadding + size.Width
		} else {
			offset = cur.width + cfg.SpacingHorizontal
			cur.width += cfg.SpacingHorizontal + size.Width
		}
		cur.indices = append(cur.indices, i)
		cur.offsets = append(cur.offsets, offset)
		cur.sizes = append(cur.sizes, size)
		cur.height = max(cur.height, size.Height)
	}
	finalize()

	// Every row added its trailing vertical spacing; the last one has no
	// row below it.
	totalH -= cfg.SpacingVertical

	return Result{
		Size: Size{Width: availableWidth, Height: totalH},
		Rows: rows,
	}
}
