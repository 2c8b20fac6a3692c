package dashboard

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/flowboard/internal/render"
)

func TestTextView_Measure(t *testing.T) {
	type tc struct {
		view       *TextView
		proposed   float64
		wantWidth  float64
		wantHeight float64
	}

	tests := map[string]tc{
		"title only": {
			view:       NewTextView("CPU", ""),
			proposed:   20,
			wantWidth:  20,
			wantHeight: 1 + render.VerticalChrome,
		},
		"title and short body": {
			view:       NewTextView("CPU", "42%"),
			proposed:   20.7,
			wantWidth:  20,
			wantHeight: 2 + render.VerticalChrome,
		},
		"empty": {
			view:       NewTextView("", ""),
			proposed:   10,
			wantWidth:  10,
			wantHeight: render.VerticalChrome,
		},
		"clamped to minimum width": {
			view:       NewTextView("T", ""),
			proposed:   1,
			wantWidth:  MinTileWidth,
			wantHeight: 1 + render.VerticalChrome,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.view.Measure(tt.proposed)
			if got.Width != tt.wantWidth || got.Height != tt.wantHeight {
				t.Errorf("Measure(%g) = %+v, want {%g %g}", tt.proposed, got, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestTextView_WrapsBody(t *testing.T) {
	body := "the quick brown fox jumps over the lazy dog"
	v := NewTextView("Fox", body)

	narrow := v.Measure(14)
	wide := v.Measure(80)
	if narrow.Height <= wide.Height {
		t.Errorf("narrow height %g should exceed wide height %g", narrow.Height, wide.Height)
	}

	inner := 14 - render.HorizontalChrome
	lines := v.Render(inner, 100)
	if float64(len(lines)+render.VerticalChrome) != narrow.Height {
		t.Errorf("Render gave %d lines, Measure height %g", len(lines), narrow.Height)
	}
	if lines[0] != "Fox" {
		t.Errorf("first line = %q, want title", lines[0])
	}
	for _, l := range lines {
		if w := runewidth.StringWidth(l); w > inner {
			t.Errorf("line %q is %d cells, limit %d", l, w, inner)
		}
	}
	joined := strings.Join(strings.Fields(strings.Join(lines[1:], " ")), " ")
	if joined != body {
		t.Errorf("wrapped body = %q, want %q", joined, body)
	}
}

func TestTextView_RenderTruncates(t *testing.T) {
	v := NewTextView("A very long title", "one two three four five six")

	lines := v.Render(6, 2)
	if len(lines) != 2 {
		t.Fatalf("len(Render) = %d, want 2", len(lines))
	}
	if w := runewidth.StringWidth(lines[0]); w > 6 {
		t.Errorf("title %q is %d cells, limit 6", lines[0], w)
	}
	if !strings.HasSuffix(lines[0], "…") {
		t.Errorf("truncated title %q should end with ellipsis", lines[0])
	}
}
