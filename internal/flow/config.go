package flow

import (
	"fmt"
	"strings"
)

// HAlign positions a row horizontally within the bounds.
type HAlign uint8

const (
	HAlignLeading  HAlign = iota // Row starts at the left edge
	HAlignCenter                 // Row centered horizontally
	HAlignTrailing               // Row ends at the right edge
)

// VAlign positions an element vertically within its row.
type VAlign uint8

const (
	VAlignTop    VAlign = iota // Element top matches row top
	VAlignCenter               // Element centered in the row
	VAlignBottom               // Element bottom matches row bottom
)

func (a HAlign) factor() float64 {
	switch a {
	case HAlignCenter:
		return 0.5
	case HAlignTrailing:
		return 1
	default:
		return 0
	}
}

func (a VAlign) factor() float64 {
	switch a {
	case VAlignCenter:
		return 0.5
	case VAlignBottom:
		return 1
	default:
		return 0
	}
}

func (a HAlign) String() string {
	switch a {
	case HAlignLeading:
		return "leading"
	case HAlignCenter:
		return "center"
	case HAlignTrailing:
		return "trailing"
	default:
		return fmt.Sprintf("HAlign(%d)", uint8(a))
	}
}

func (a VAlign) String() string {
	switch a {
	case VAlignTop:
		return "top"
	case VAlignCenter:
		return "center"
	case VAlignBottom:
		return "bottom"
	default:
		return fmt.Sprintf("VAlign(%d)", uint8(a))
	}
}

// ParseHAlign parses "leading", "center" or "trailing". The aliases "left"
// and "right" are accepted.
func ParseHAlign(text string) (HAlign, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "", "leading", "left":
		return HAlignLeading, nil
	case "center":
		return HAlignCenter, nil
	case "trailing", "right":
		return HAlignTrailing, nil
	default:
		return HAlignLeading, fmt.Errorf("%w: %q", ErrUnknownAlignment, text)
	}
}

// ParseVAlign parses "top", "center" or "bottom".
func ParseVAlign(text string) (VAlign, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "", "top":
		return VAlignTop, nil
	case "center":
		return VAlignCenter, nil
	case "bottom":
		return VAlignBottom, nil
	default:
		return VAlignTop, fmt.Errorf("%w: %q", ErrUnknownAlignment, text)
	}
}

// Config holds the spacing and alignment for one layout pass.
type Config struct {
	SidePadding       float64 // Space left of the first and right of the last element in a row
	SpacingHorizontal float64 // Space between elements in a row
	SpacingVertical   float64 // Space between rows

	RowHorizontalAlignment HAlign
	RowVerticalAlignment   VAlign
}

// DefaultConfig returns a Config with dashboard defaults.
func DefaultConfig() Config {
	return Config{
		SidePadding:       16,
		SpacingHorizontal: 16,
		SpacingVertical:   16,
	}
}

// Validate checks that every length is non-negative.
func (c Config) Validate() error {
	lengths := []struct {
		name  string
		value float64
	}{
		{"side padding", c.SidePadding},
		{"horizontal spacing", c.SpacingHorizontal},
		{"vertical spacing", c.SpacingVertical},
	}
	for _, l := range lengths {
		if l.value < 0 {
			return fmt.Errorf("%w: %s is %g", ErrNegativeLength, l.name, l.value)
		}
	}
	return nil
}
