package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Canvas is a fixed-size grid of cells. Wide runes occupy two cells; the
// second cell holds a zero rune and is skipped by String.
type Canvas struct {
	cells  []rune
	width  int
	height int
}

// NewCanvas creates a canvas filled with spaces.
func NewCanvas(width, height int) *Canvas {
	width, height = max(0, width), max(0, height)
	cells := make([]rune, width*height)
	for i := range cells {
		cells[i] = ' '
	}
	return &Canvas{cells: cells, width: width, height: height}
}

// Width returns the canvas width in columns.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in rows.
func (c *Canvas) Height() int {
	return c.height
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (c *Canvas) idx(x, y int) int {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return -1
	}
	return y*c.width + x
}

// at returns the rune at (x, y), or 0 when out of bounds.
func (c *Canvas) at(x, y int) rune {
	i := c.idx(x, y)
	if i < 0 {
		return 0
	}
	return c.cells[i]
}

// SetRune places r at (x, y) and returns the number of cells it used.
// A wide rune that would not fit before the right edge is replaced by a space.
func (c *Canvas) SetRune(x, y int, r rune) int {
	i := c.idx(x, y)
	if i < 0 {
		return 0
	}
	w := runewidth.RuneWidth(r)
	if w == 0 {
		return 0
	}
	c.release(x, i)
	if w == 2 {
		if x+1 >= c.width {
			c.cells[i] = ' '
			return 1
		}
		c.release(x+1, i+1)
		c.cells[i] = r
		c.cells[i+1] = 0
		return 2
	}
	c.cells[i] = r
	return 1
}

// release blanks the other half of a wide rune that covers cell i at
// column x, so overwriting either half never leaves a stray head or tail.
func (c *Canvas) release(x, i int) {
	switch {
	case c.cells[i] == 0 && x > 0:
		c.cells[i-1] = ' '
	case runewidth.RuneWidth(c.cells[i]) == 2 && x+1 < c.width:
		c.cells[i+1] = ' '
	}
}

// SetString writes s starting at (x, y), clipping at maxWidth cells and at
// the canvas edge. It returns the number of cells written.
func (c *Canvas) SetString(x, y int, s string, maxWidth int) int {
	used := 0
	for _, r := range s {
		if used+runewidth.RuneWidth(r) > maxWidth {
			break
		}
		n := c.SetRune(x+used, y, r)
		if n == 0 && x+used >= c.width {
			break
		}
		used += n
	}
	return used
}

// DrawBox draws a border around the cell rectangle (x, y, w, h).
// Boxes narrower or shorter than two cells are not drawn.
func (c *Canvas) DrawBox(x, y, w, h int, style BorderStyle) {
	if w < 2 || h < 2 {
		return
	}
	ch := style.Chars()
	right, bottom := x+w-1, y+h-1

	c.SetRune(x, y, ch.TopLeft)
	c.SetRune(right, y, ch.TopRight)
	c.SetRune(x, bottom, ch.BottomLeft)
	c.SetRune(right, bottom, ch.BottomRight)
	for i := x + 1; i < right; i++ {
		c.SetRune(i, y, ch.Top)
		c.SetRune(i, bottom, ch.Bottom)
	}
	for j := y + 1; j < bottom; j++ {
		c.SetRune(x, j, ch.Left)
		c.SetRune(right, j, ch.Right)
	}
}

// String returns the canvas rows joined by newlines, with trailing spaces
// removed from each row.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		row := c.cells[y*c.width : (y+1)*c.width]
		var line strings.Builder
		for _, r := range row {
			if r != 0 {
				line.WriteRune(r)
			}
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if y < c.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
