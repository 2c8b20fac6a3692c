//go:build !unix

package term

// Width is not supported on this platform.
func Width(fd int) (int, error) {
	return 0, ErrNotTerminal
}
