package render

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestNewCanvas(t *testing.T) {
	type tc struct {
		width, height int
		wantW, wantH  int
	}

	tests := map[string]tc{
		"normal":   {width: 10, height: 3, wantW: 10, wantH: 3},
		"zero":     {width: 0, height: 0, wantW: 0, wantH: 0},
		"negative": {width: -5, height: -1, wantW: 0, wantH: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewCanvas(tt.width, tt.height)
			if c.Width() != tt.wantW || c.Height() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", c.Width(), c.Height(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestCanvas_SetRune(t *testing.T) {
	c := NewCanvas(4, 1)

	if n := c.SetRune(0, 0, 'a'); n != 1 {
		t.Errorf("SetRune narrow = %d, want 1", n)
	}
	if n := c.SetRune(1, 0, '世'); n != 2 {
		t.Errorf("SetRune wide = %d, want 2", n)
	}
	if n := c.SetRune(3, 0, '界'); n != 1 || c.at(3, 0) != ' ' {
		t.Errorf("wide rune at last column = %d, %q; want 1, space", n, c.at(3, 0))
	}
	if n := c.SetRune(9, 0, 'x'); n != 0 {
		t.Errorf("out of bounds SetRune = %d, want 0", n)
	}
	if got := c.String(); got != "a世" {
		t.Errorf("String() = %q, want %q", got, "a世")
	}
}

func TestCanvas_SetStringClips(t *testing.T) {
	c := NewCanvas(10, 1)
	n := c.SetString(2, 0, "hello world", 5)
	if n != 5 {
		t.Errorf("SetString = %d, want 5", n)
	}
	if got := c.String(); got != "  hello" {
		t.Errorf("String() = %q, want %q", got, "  hello")
	}

	c = NewCanvas(4, 1)
	c.SetString(2, 0, "abcdef", 10)
	if got := c.String(); got != "  ab" {
		t.Errorf("edge clip String() = %q, want %q", got, "  ab")
	}
}

func TestCanvas_DrawBox(t *testing.T) {
	c := NewCanvas(6, 4)
	c.DrawBox(1, 0, 4, 3, BorderSingle)

	want := strings.Join([]string{
		" ┌──┐",
		" │  │",
		" └──┘",
		"",
	}, "\n")
	if got := c.String(); got != want {
		t.Errorf("DrawBox:\n%s\nwant:\n%s", got, want)
	}
}

func TestCanvas_DrawBoxTooSmall(t *testing.T) {
	c := NewCanvas(3, 3)
	c.DrawBox(0, 0, 1, 3, BorderSingle)
	if got := c.String(); strings.TrimSpace(got) != "" {
		t.Errorf("1-wide box should not draw, got %q", got)
	}
}

func TestParseBorderStyle(t *testing.T) {
	for _, s := range []BorderStyle{BorderSingle, BorderRounded, BorderDouble, BorderThick, BorderASCII} {
		got, err := ParseBorderStyle(s.String())
		if err != nil || got != s {
			t.Errorf("ParseBorderStyle(%q) = %v, %v", s.String(), got, err)
		}
	}
	if _, err := ParseBorderStyle("dotted"); err == nil {
		t.Error("ParseBorderStyle(dotted) should fail")
	}
	if c := BorderRounded.Chars(); c.TopLeft != '╭' || c.BottomRight != '╯' {
		t.Errorf("rounded corners = %q %q", c.TopLeft, c.BottomRight)
	}
}

func TestCanvas_OverwriteWideRune(t *testing.T) {
	type tc struct {
		setup func(c *Canvas)
		want  string
	}

	tests := map[string]tc{
		"narrow over head": {
			setup: func(c *Canvas) {
				c.SetRune(0, 0, '世')
				c.SetRune(2, 0, 'x')
				c.SetRune(0, 0, 'a')
			},
			want: "a x",
		},
		"narrow over tail": {
			setup: func(c *Canvas) {
				c.SetRune(0, 0, '世')
				c.SetRune(2, 0, 'x')
				c.SetRune(1, 0, 'b')
			},
			want: " bx",
		},
		"wide over tail": {
			setup: func(c *Canvas) {
				c.SetRune(0, 0, '界')
				c.SetRune(1, 0, '世')
			},
			want: " 世",
		},
		"wide tail over head": {
			setup: func(c *Canvas) {
				c.SetRune(2, 0, '界')
				c.SetRune(1, 0, '世')
			},
			want: " 世",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewCanvas(4, 1)
			tt.setup(c)
			got := c.String()
			if got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if w := runewidth.StringWidth(got); w > c.Width() {
				t.Errorf("row is %d cells wide on a %d-cell canvas", w, c.Width())
			}
		})
	}
}
