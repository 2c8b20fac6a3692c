package term

import (
	"os"
	"testing"
)

func TestWidthOr_NotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := Width(int(f.Fd())); err == nil {
		t.Error("Width on a regular file should fail")
	}
	if got := WidthOr(int(f.Fd()), 42); got != 42 {
		t.Errorf("WidthOr = %d, want 42", got)
	}
}
