package render

import (
	"fmt"
	"strings"
)

// BorderStyle represents different styles of box borders.
type BorderStyle int

const (
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle BorderStyle = iota
	// BorderRounded uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRounded
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderThick uses thick/heavy box-drawing characters (━, ┃, ┏, etc.)
	BorderThick
	// BorderASCII uses plain ASCII (+, -, |) for terminals without box drawing.
	BorderASCII
)

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// Chars returns the box-drawing characters for this border style.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderRounded:
		return BorderChars{'╭', '─', '╮', '│', '│', '╰', '─', '╯'}
	case BorderDouble:
		return BorderChars{'╔', '═', '╗', '║', '║', '╚', '═', '╝'}
	case BorderThick:
		return BorderChars{'┏', '━', '┓', '┃', '┃', '┗', '━', '┛'}
	case BorderASCII:
		return BorderChars{'+', '-', '+', '|', '|', '+', '-', '+'}
	default:
		return BorderChars{'┌', '─', '┐', '│', '│', '└', '─', '┘'}
	}
}

func (b BorderStyle) String() string {
	switch b {
	case BorderSingle:
		return "single"
	case BorderRounded:
		return "rounded"
	case BorderDouble:
		return "double"
	case BorderThick:
		return "thick"
	case BorderASCII:
		return "ascii"
	default:
		return fmt.Sprintf("BorderStyle(%d)", int(b))
	}
}

// ParseBorderStyle parses a name produced by BorderStyle.String.
func ParseBorderStyle(name string) (BorderStyle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "single":
		return BorderSingle, nil
	case "rounded":
		return BorderRounded, nil
	case "double":
		return BorderDouble, nil
	case "thick":
		return BorderThick, nil
	case "ascii":
		return BorderASCII, nil
	default:
		return BorderSingle, fmt.Errorf("unknown border style %q", name)
	}
}
