package term

import "errors"

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

// ErrNotTerminal is returned when no terminal size is available.
var ErrNotTerminal = errors.New("term: not a terminal")

// WidthOr returns the terminal width on fd, or fallback when it cannot be
// determined.
func WidthOr(fd int, fallback int) int {
	w, err := Width(fd)
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
