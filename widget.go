package flowboard

import (
	"github.com/grindlemire/flowboard/internal/board"
	"github.com/grindlemire/flowboard/internal/widget"
)

// View measures and renders one element.
type View = widget.View

// Element pairs an id and sizing intent with a View.
type Element = widget.Element

// Elements is an ordered element list. It implements Measurer.
type Elements = widget.Elements

// NewElement creates an Element. It panics on a nil view.
func NewElement(id string, intent SizingIntent, view View) Element {
	return widget.New(id, intent, view)
}

// SortElements stably reorders elements so ids listed in order come
// first, in that order.
func SortElements(elements Elements, order []string) {
	widget.SortElements(elements, order)
}

// NominalWidths returns the proposed width for every widget kind.
func NominalWidths(containerWidth float64, cfg Config, device DeviceClass) map[WidgetKind]float64 {
	return widget.NominalWidths(containerWidth, cfg, device)
}

// Board hosts elements and caches their packed layout.
type Board = board.Board

// BoardOption configures a Board.
type BoardOption = board.Option

var (
	WithConfig           = board.WithConfig
	WithDeviceClass      = board.WithDeviceClass
	WithTabletBreakpoint = board.WithTabletBreakpoint
	WithIdealPerRow      = board.WithIdealPerRow
	WithLogger           = board.WithLogger
)

// DefaultTabletBreakpoint is the container width at which a board without
// a pinned device class switches to tablet rules.
const DefaultTabletBreakpoint = board.DefaultTabletBreakpoint

// NewBoard creates a Board. It panics if the configuration is invalid.
func NewBoard(elements Elements, opts ...BoardOption) *Board {
	return board.New(elements, opts...)
}
