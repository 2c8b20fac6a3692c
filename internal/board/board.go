package board

import (
	"github.com/charmbracelet/log"

	"github.com/grindlemire/flowboard/internal/debug"
	"github.com/grindlemire/flowboard/internal/flow"
	"github.com/grindlemire/flowboard/internal/widget"
)

// Board is a layout container for dashboard elements.
// It is not safe for concurrent use; run one layout pass at a time.
type Board struct {
	elements    widget.Elements
	config      flow.Config
	device      *flow.DeviceClass // nil = derive from width
	breakpoint  float64
	idealPerRow int

	cache  flow.Cache
	logger *log.Logger
	passes int
}

// Option configures a Board.
type Option func(*Board)

// WithConfig sets the spacing and alignment.
func WithConfig(cfg flow.Config) Option {
	return func(b *Board) { b.config = cfg }
}

// WithDeviceClass pins the device class instead of deriving it from width.
func WithDeviceClass(d flow.DeviceClass) Option {
	return func(b *Board) { b.device = &d }
}

// WithTabletBreakpoint sets the width at which an unpinned board uses
// tablet sizing.
func WithTabletBreakpoint(w float64) Option {
	return func(b *Board) { b.breakpoint = w }
}

// WithIdealPerRow caps the number of elements per row. n <= 0 removes the cap.
func WithIdealPerRow(n int) Option {
	return func(b *Board) { b.idealPerRow = n }
}

// WithLogger sets the logger used for cache diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(b *Board) { b.logger = l }
}

// New creates a Board holding elements.
// Invalid configuration panics, as it would inside flow.Pack.
func New(elements widget.Elements, opts ...Option) *Board {
	b := &Board{
		elements:   elements,
		config:     flow.DefaultConfig(),
		breakpoint: DefaultTabletBreakpoint,
		logger:     debug.Discard(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if err := b.config.Validate(); err != nil {
		panic("board: " + err.Error())
	}
	b.cache.MarkDirty()
	return b
}

// Elements returns the hosted elements. Callers must not modify the slice;
// use SetElements instead.
func (b *Board) Elements() widget.Elements {
	return b.elements
}

// Config returns the current configuration.
func (b *Board) Config() flow.Config {
	return b.config
}

// SetElements replaces the element sequence and drops the cached layout.
func (b *Board) SetElements(elements widget.Elements) {
	b.elements = elements
	b.cache.Reset()
}

// SetConfig replaces the configuration and invalidates the layout.
func (b *Board) SetConfig(cfg flow.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	b.config = cfg
	b.Invalidate()
	return nil
}

// SetDeviceClass pins the device class and invalidates the layout.
func (b *Board) SetDeviceClass(d flow.DeviceClass) {
	b.device = &d
	b.Invalidate()
}

// SetIdealPerRow changes the per-row cap and invalidates the layout.
func (b *Board) SetIdealPerRow(n int) {
	b.idealPerRow = n
	b.Invalidate()
}

// Invalidate forces the next layout pass to repack.
func (b *Board) Invalidate() {
	b.cache.MarkDirty()
}

// DeviceClass returns the device class a pass at width would use.
func (b *Board) DeviceClass(width float64) flow.DeviceClass {
	if b.device != nil {
		return *b.device
	}
	return DeviceForWidth(width, b.breakpoint)
}

// Passes returns how many times the board has repacked. Cached passes
// do not count.
func (b *Board) Passes() int {
	return b.passes
}

// Measure returns the packed layout for width, reusing the previous result
// when neither the width nor the board has changed.
func (b *Board) Measure(width float64) flow.Result {
	device := b.DeviceClass(width)
	dirty := b.cache.IsDirty()
	hit := true
	res := b.cache.EnsureValid(width, func() flow.Result {
		hit = false
		b.passes++
		return flow.Pack(width, b.elements.Intents(), b.elements, b.config, device, b.idealPerRow)
	})
	if hit {
		b.logger.Debug("layout cache hit", "width", width)
	} else {
		b.logger.Debug("layout packed",
			"width", width,
			"invalidated", dirty,
			"device", device,
			"elements", len(b.elements),
			"rows", len(res.Rows),
			"height", res.Size.Height,
		)
	}
	return res
}

// Arrange lays the board out inside bounds and returns each element's
// placement, in element order.
func (b *Board) Arrange(bounds flow.Rect) []flow.Placement {
	return flow.Place(b.Measure(bounds.Width), bounds, b.config)
}
