package render

import (
	"math"

	"github.com/grindlemire/flowboard/internal/flow"
	"github.com/grindlemire/flowboard/internal/widget"
)

// Box chrome around tile content, in cells: a one-cell border on every
// side plus one cell of horizontal padding.
const (
	HorizontalChrome = 4
	VerticalChrome   = 2
)

// CellRect rounds a layout rectangle to whole cells. Edges are rounded
// independently so adjacent tiles never overlap.
func CellRect(r flow.Rect) (x, y, w, h int) {
	x = int(math.Round(r.X))
	y = int(math.Round(r.Y))
	w = int(math.Round(r.Right())) - x
	h = int(math.Round(r.Bottom())) - y
	return x, y, w, h
}

// Draw draws every placed element as a bordered box with its view's
// content inside. Elements entirely off the canvas are skipped.
func Draw(c *Canvas, elements widget.Elements, placements []flow.Placement, style BorderStyle) {
	for _, p := range placements {
		x, y, w, h := CellRect(p.Rect())
		if x >= c.Width() || y >= c.Height() || x+w <= 0 || y+h <= 0 {
			continue
		}
		c.DrawBox(x, y, w, h, style)

		innerW, innerH := w-HorizontalChrome, h-VerticalChrome
		if innerW <= 0 || innerH <= 0 {
			continue
		}
		lines := elements[p.Index].View.Render(innerW, innerH)
		for i, line := range lines {
			if i >= innerH {
				break
			}
			c.SetString(x+HorizontalChrome/2, y+1+i, line, innerW)
		}
	}
}

// Board renders placements onto a new canvas sized to width by height
// cells and returns it as a string.
func Board(elements widget.Elements, placements []flow.Placement, width, height int, style BorderStyle) string {
	c := NewCanvas(width, height)
	Draw(c, elements, placements, style)
	return c.String()
}
