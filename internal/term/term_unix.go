//go:build unix

// Package term reports the size of the controlling terminal.
package term

import (
	"golang.org/x/sys/unix"
)

// Width returns the column count of the terminal on fd.
func Width(fd int) (int, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, err
	}
	if ws.Col == 0 {
		return 0, ErrNotTerminal
	}
	return int(ws.Col), nil
}
