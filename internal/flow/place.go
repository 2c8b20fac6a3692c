package flow

// Placement is the resolved position of one element.
type Placement struct {
	Index    int   // Input position of the element
	Position Point // Top-left corner in the coordinate space of the bounds
	Size     Size  // Measured size
}

// Rect returns the element's frame.
func (p Placement) Rect() Rect {
	return NewRect(p.Position.X, p.Position.Y, p.Size.Width, p.Size.Height)
}

// Place resolves row alignment and returns the absolute position of every
// element in result, in row order. Rows narrower than bounds are shifted
// by cfg.RowHorizontalAlignment; elements shorter than their row are
// shifted by cfg.RowVerticalAlignment. result is not modified.
func Place(result Result, bounds Rect, cfg Config) []Placement {
	out := make([]Placement, 0, result.Len())
	hf := cfg.RowHorizontalAlignment.factor()
	vf := cfg.RowVerticalAlignment.factor()

	for _, row := range result.Rows {
		rowX := (bounds.Width - row.Frame.Width) * hf
		for k, idx := range row.Indices {
			size := row.Sizes[k]
			out = append(out, Placement{
				Index: idx,
				Position: Point{
					X: bounds.X + rowX + row.Frame.X + row.Offsets[k],
					Y: bounds.Y + row.Frame.Y + (row.Frame.Height-size.Height)*vf,
				},
				Size: size,
			})
		}
	}
	return out
}
