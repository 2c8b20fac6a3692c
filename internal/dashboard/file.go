package dashboard

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/grindlemire/flowboard/internal/flow"
	"github.com/grindlemire/flowboard/internal/widget"
)

// File is a parsed dashboard description.
type File struct {
	Title       string   `toml:"title"`
	Order       []string `toml:"order"`
	IdealPerRow int      `toml:"ideal_per_row"`
	Device      string   `toml:"device"`
	Layout      Layout   `toml:"layout"`
	Tiles       []Tile   `toml:"tile"`

	// Path is the file the dashboard was loaded from, if any.
	Path string `toml:"-"`
}

// Layout holds per-dashboard overrides of the layout configuration.
// Unset fields keep the value from the caller's base configuration.
type Layout struct {
	SidePadding            *float64 `toml:"side_padding"`
	SpacingHorizontal      *float64 `toml:"spacing_horizontal"`
	SpacingVertical        *float64 `toml:"spacing_vertical"`
	RowHorizontalAlignment string   `toml:"row_horizontal_alignment"`
	RowVerticalAlignment   string   `toml:"row_vertical_alignment"`
}

// Tile is one dashboard element.
type Tile struct {
	ID    string `toml:"id"`
	Size  string `toml:"size"`
	Title string `toml:"title"`
	Body  string `toml:"body"`
}

// Load reads and parses the dashboard at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dashboard %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading dashboard %s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

// Parse decodes and validates a dashboard from TOML bytes.
// Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing TOML: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks tile ids and sizes and the layout overrides.
func (f *File) Validate() error {
	if len(f.Tiles) == 0 {
		return ErrNoTiles
	}
	seen := make(map[string]int, len(f.Tiles))
	for i, t := range f.Tiles {
		if t.ID == "" {
			return fmt.Errorf("tile %d: %w", i, ErrMissingID)
		}
		if prev, ok := seen[t.ID]; ok {
			return fmt.Errorf("tiles %d and %d: %w: %q", prev, i, ErrDuplicateID, t.ID)
		}
		seen[t.ID] = i
		if _, err := t.Intent(); err != nil {
			return fmt.Errorf("tile %q: %w", t.ID, err)
		}
	}
	if f.Device != "" {
		if _, err := flow.ParseDeviceClass(f.Device); err != nil {
			return fmt.Errorf("device: %w", err)
		}
	}
	if _, err := f.Layout.Apply(flow.Config{}); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	return nil
}

// Intent returns the tile's sizing intent. An empty size means dynamic.
func (t Tile) Intent() (flow.SizingIntent, error) {
	if t.Size == "" {
		return flow.DynamicWidth(), nil
	}
	return flow.ParseSizingIntent(t.Size)
}

// Apply returns base with the overrides in l applied.
func (l Layout) Apply(base flow.Config) (flow.Config, error) {
	cfg := base
	if l.SidePadding != nil {
		cfg.SidePadding = *l.SidePadding
	}
	if l.SpacingHorizontal != nil {
		cfg.SpacingHorizontal = *l.SpacingHorizontal
	}
	if l.SpacingVertical != nil {
		cfg.SpacingVertical = *l.SpacingVertical
	}
	if l.RowHorizontalAlignment != "" {
		h, err := flow.ParseHAlign(l.RowHorizontalAlignment)
		if err != nil {
			return base, err
		}
		cfg.RowHorizontalAlignment = h
	}
	if l.RowVerticalAlignment != "" {
		v, err := flow.ParseVAlign(l.RowVerticalAlignment)
		if err != nil {
			return base, err
		}
		cfg.RowVerticalAlignment = v
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

// DeviceClass returns the pinned device class. ok is false when the file
// leaves it to the host.
func (f *File) DeviceClass() (d flow.DeviceClass, ok bool) {
	if f.Device == "" {
		return flow.Phone, false
	}
	d, err := flow.ParseDeviceClass(f.Device)
	return d, err == nil
}

// Elements returns one text element per tile, sorted by Order.
// The file must have passed Validate.
func (f *File) Elements() widget.Elements {
	els := make(widget.Elements, 0, len(f.Tiles))
	for _, t := range f.Tiles {
		intent, err := t.Intent()
		if err != nil {
			panic("dashboard: Elements on unvalidated file: " + err.Error())
		}
		els = append(els, widget.New(t.ID, intent, NewTextView(t.Title, t.Body)))
	}
	widget.SortElements(els, f.Order)
	return els
}
