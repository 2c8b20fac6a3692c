// layout.go re-exports layout types from internal/flow.
// Any changes to internal/flow types must be mirrored here.
package flowboard

import "github.com/grindlemire/flowboard/internal/flow"

// Size is a width/height pair.
type Size = flow.Size

// Point is a position in layout space.
type Point = flow.Point

// Rect is a rectangle with position and dimensions.
type Rect = flow.Rect

// NewRect creates a Rect.
func NewRect(x, y, width, height float64) Rect {
	return flow.NewRect(x, y, width, height)
}

// WidgetKind is a fixed sizing category.
type WidgetKind = flow.WidgetKind

const (
	Small               = flow.Small
	Medium              = flow.Medium
	Large               = flow.Large
	SmallPhoneMediumPad = flow.SmallPhoneMediumPad
	LargeFullBleed      = flow.LargeFullBleed
)

// SizingIntent is how an element wants to be sized.
type SizingIntent = flow.SizingIntent

// DynamicWidth returns the intent of an element that sizes itself within
// the content width.
func DynamicWidth() SizingIntent { return flow.DynamicWidth() }

// Widget returns the intent for a fixed widget kind.
func Widget(kind WidgetKind) SizingIntent { return flow.Widget(kind) }

// ParseSizingIntent parses names like "small" or "large-full-bleed".
func ParseSizingIntent(text string) (SizingIntent, error) { return flow.ParseSizingIntent(text) }

// DeviceClass selects phone or tablet sizing rules.
type DeviceClass = flow.DeviceClass

const (
	Phone  = flow.Phone
	Tablet = flow.Tablet
)

// HAlign positions a row horizontally within the container.
type HAlign = flow.HAlign

const (
	HAlignLeading  = flow.HAlignLeading
	HAlignCenter   = flow.HAlignCenter
	HAlignTrailing = flow.HAlignTrailing
)

// VAlign positions an element vertically within its row.
type VAlign = flow.VAlign

const (
	VAlignTop    = flow.VAlignTop
	VAlignCenter = flow.VAlignCenter
	VAlignBottom = flow.VAlignBottom
)

// Config holds padding, spacing and alignment.
type Config = flow.Config

// DefaultConfig returns 16-point padding and spacing with leading, top
// alignment.
func DefaultConfig() Config { return flow.DefaultConfig() }

// Measurer reports the size of element index when offered a width.
type Measurer = flow.Measurer

// MeasureFunc adapts a function to Measurer.
type MeasureFunc = flow.MeasureFunc

// FixedSizes is a Measurer that ignores the offered width.
type FixedSizes = flow.FixedSizes

// Row is one packed row.
type Row = flow.Row

// Result is the output of Pack.
type Result = flow.Result

// Placement is an element's absolute position and size.
type Placement = flow.Placement

// Cache holds the last packed result until invalidated.
type Cache = flow.Cache

var (
	ErrNegativeLength   = flow.ErrNegativeLength
	ErrUnknownIntent    = flow.ErrUnknownIntent
	ErrUnknownDevice    = flow.ErrUnknownDevice
	ErrUnknownAlignment = flow.ErrUnknownAlignment
)

// ProposedWidth returns the width offered to an element with intent.
func ProposedWidth(intent SizingIntent, availableWidth float64, cfg Config, device DeviceClass) float64 {
	return flow.ProposedWidth(intent, availableWidth, cfg, device)
}

// Pack arranges elements into rows. idealPerRow caps elements per row;
// zero or less means no cap. It panics on a negative Config length.
func Pack(availableWidth float64, intents []SizingIntent, m Measurer, cfg Config, device DeviceClass, idealPerRow int) Result {
	return flow.Pack(availableWidth, intents, m, cfg, device, idealPerRow)
}

// Place returns absolute positions for a packed result inside bounds.
func Place(result Result, bounds Rect, cfg Config) []Placement {
	return flow.Place(result, bounds, cfg)
}
