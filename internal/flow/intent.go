package flow

import (
	"fmt"
	"strings"
)

// WidgetKind is the fixed-ratio size category of a widget tile.
type WidgetKind uint8

const (
	Small               WidgetKind = iota // Quarter row on tablet, half row on phone
	Medium                                // Half row on tablet, full row on phone
	Large                                 // Full row inside the side padding
	SmallPhoneMediumPad                   // Half row on both device classes
	LargeFullBleed                        // Full container width, own row
)

// WidgetKinds lists every kind in declaration order.
var WidgetKinds = []WidgetKind{Small, Medium, Large, SmallPhoneMediumPad, LargeFullBleed}

func (k WidgetKind) String() string {
	switch k {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	case SmallPhoneMediumPad:
		return "small-phone-medium-pad"
	case LargeFullBleed:
		return "large-full-bleed"
	default:
		return fmt.Sprintf("WidgetKind(%d)", uint8(k))
	}
}

// SizingIntent is the sizing policy an element declares. It is either
// dynamic (the element sizes itself to the padded content width) or a
// widget of a given kind. The zero value is a Small widget.
type SizingIntent struct {
	dynamic bool
	kind    WidgetKind
}

// DynamicWidth returns the intent for an element that takes the content
// width minus side paddings.
func DynamicWidth() SizingIntent {
	return SizingIntent{dynamic: true}
}

// Widget returns the intent for a widget of the given kind.
func Widget(kind WidgetKind) SizingIntent {
	return SizingIntent{kind: kind}
}

// IsDynamic reports whether the intent is DynamicWidth.
func (s SizingIntent) IsDynamic() bool {
	return s.dynamic
}

// Kind returns the widget kind. ok is false for dynamic intents.
func (s SizingIntent) Kind() (kind WidgetKind, ok bool) {
	if s.dynamic {
		return 0, false
	}
	return s.kind, true
}

// IsFullBleed reports whether the element always takes a full-width row.
func (s SizingIntent) IsFullBleed() bool {
	return !s.dynamic && s.kind == LargeFullBleed
}

func (s SizingIntent) String() string {
	if s.dynamic {
		return "dynamic"
	}
	return s.kind.String()
}

// ParseSizingIntent parses the text form produced by SizingIntent.String.
// Matching is case-insensitive and accepts underscores for dashes.
func ParseSizingIntent(text string) (SizingIntent, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(text)), "_", "-")
	if norm == "dynamic" {
		return DynamicWidth(), nil
	}
	for _, k := range WidgetKinds {
		if k.String() == norm {
			return Widget(k), nil
		}
	}
	return SizingIntent{}, fmt.Errorf("%w: %q", ErrUnknownIntent, text)
}

// DeviceClass selects how many widgets of a kind target one row.
type DeviceClass uint8

const (
	Phone DeviceClass = iota
	Tablet
)

func (d DeviceClass) String() string {
	switch d {
	case Phone:
		return "phone"
	case Tablet:
		return "tablet"
	default:
		return fmt.Sprintf("DeviceClass(%d)", uint8(d))
	}
}

// ParseDeviceClass parses "phone" or "tablet" (case-insensitive).
func ParseDeviceClass(text string) (DeviceClass, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "phone":
		return Phone, nil
	case "tablet", "pad":
		return Tablet, nil
	default:
		return Phone, fmt.Errorf("%w: %q", ErrUnknownDevice, text)
	}
}
