package dashboard

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/flowboard/internal/flow"
	"github.com/grindlemire/flowboard/internal/render"
)

// MinTileWidth is the narrowest tile a TextView reports, in cells.
const MinTileWidth = render.HorizontalChrome + 2

// TextView is a titled block of text measured in terminal cells. It takes
// the width it is offered and grows vertically to fit its wrapped body.
type TextView struct {
	Title string
	Body  string
}

// NewTextView creates a TextView.
func NewTextView(title, body string) *TextView {
	return &TextView{Title: title, Body: body}
}

// Measure returns the box size for proposedWidth, including border and
// padding chrome.
func (v *TextView) Measure(proposedWidth float64) flow.Size {
	w := max(MinTileWidth, int(math.Floor(proposedWidth)))
	lines := v.lines(w - render.HorizontalChrome)
	return flow.Size{
		Width:  float64(w),
		Height: float64(len(lines) + render.VerticalChrome),
	}
}

// Render returns the title and wrapped body lines for a content area of
// width by height cells.
func (v *TextView) Render(width, height int) []string {
	lines := v.lines(width)
	if len(lines) > height {
		lines = lines[:max(0, height)]
	}
	return lines
}

func (v *TextView) lines(width int) []string {
	width = max(1, width)
	var out []string
	if v.Title != "" {
		out = append(out, runewidth.Truncate(v.Title, width, "…"))
	}
	if strings.TrimSpace(v.Body) == "" {
		return out
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(v.Body)
	for _, line := range strings.Split(wrapped, "\n") {
		out = append(out, strings.TrimRight(line, " "))
	}
	return out
}
