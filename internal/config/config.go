// Package config loads flowboard settings from defaults, an optional TOML
// config file, FLOWBOARD_* environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/grindlemire/flowboard/internal/flow"
	"github.com/grindlemire/flowboard/internal/render"
)

// EnvPrefix is the prefix for environment overrides, e.g. FLOWBOARD_WIDTH
// or FLOWBOARD_LAYOUT_SIDE_PADDING.
const EnvPrefix = "FLOWBOARD"

// DeviceAuto derives the device class from the container width.
const DeviceAuto = "auto"

// ErrInvalidSetting is wrapped by every validation failure in Load.
var ErrInvalidSetting = errors.New("invalid setting")

// Settings are the resolved options for one CLI run.
type Settings struct {
	// Width is the container width in cells. 0 means use the terminal width.
	Width int
	// Device is "auto", "phone" or "tablet".
	Device string
	// TabletBreakpoint is the width at which auto device resolution picks tablet.
	TabletBreakpoint float64
	// IdealPerRow caps elements per row; 0 means no cap.
	IdealPerRow int
	// Border is the tile border style.
	Border render.BorderStyle
	// Layout is the base layout configuration; dashboard files may override it.
	Layout flow.Config
	// Verbose enables debug logging.
	Verbose bool

	// File is the config file that was read, if any.
	File string
}

// LoadOptions controls where Load reads from.
type LoadOptions struct {
	// ConfigFile is an explicit config file path. Empty means no file.
	ConfigFile string
	// Flags are bound on top of file and environment values. May be nil.
	Flags *pflag.FlagSet
}

// flagKeys maps command-line flag names to setting keys.
var flagKeys = map[string]string{
	"width":              "width",
	"device":             "device",
	"tablet-breakpoint":  "tablet_breakpoint",
	"ideal-per-row":      "ideal_per_row",
	"border":             "border",
	"verbose":            "verbose",
	"side-padding":       "layout.side_padding",
	"spacing-horizontal": "layout.spacing_horizontal",
	"spacing-vertical":   "layout.spacing_vertical",
	"row-align":          "layout.row_horizontal_alignment",
	"row-valign":         "layout.row_vertical_alignment",
}

// Defaults returns the settings used when nothing is configured. Lengths
// are in terminal cells.
func Defaults() Settings {
	return Settings{
		Device:           DeviceAuto,
		TabletBreakpoint: 120,
		Border:           render.BorderRounded,
		Layout: flow.Config{
			SidePadding:       2,
			SpacingHorizontal: 2,
			SpacingVertical:   1,
		},
	}
}

// Load resolves settings from all sources.
func Load(opts LoadOptions) (*Settings, error) {
	v := viper.New()

	d := Defaults()
	v.SetDefault("width", d.Width)
	v.SetDefault("device", d.Device)
	v.SetDefault("tablet_breakpoint", d.TabletBreakpoint)
	v.SetDefault("ideal_per_row", d.IdealPerRow)
	v.SetDefault("border", d.Border.String())
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("layout.side_padding", d.Layout.SidePadding)
	v.SetDefault("layout.spacing_horizontal", d.Layout.SpacingHorizontal)
	v.SetDefault("layout.spacing_vertical", d.Layout.SpacingVertical)
	v.SetDefault("layout.row_horizontal_alignment", d.Layout.RowHorizontalAlignment.String())
	v.SetDefault("layout.row_vertical_alignment", d.Layout.RowVerticalAlignment.String())

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", opts.ConfigFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag --%s: %w", name, err)
				}
			}
		}
	}

	s := &Settings{
		Width:            v.GetInt("width"),
		Device:           strings.ToLower(v.GetString("device")),
		TabletBreakpoint: v.GetFloat64("tablet_breakpoint"),
		IdealPerRow:      v.GetInt("ideal_per_row"),
		Verbose:          v.GetBool("verbose"),
		File:             v.ConfigFileUsed(),
		Layout: flow.Config{
			SidePadding:       v.GetFloat64("layout.side_padding"),
			SpacingHorizontal: v.GetFloat64("layout.spacing_horizontal"),
			SpacingVertical:   v.GetFloat64("layout.spacing_vertical"),
		},
	}

	var err error
	if s.Border, err = render.ParseBorderStyle(v.GetString("border")); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSetting, err)
	}
	if s.Layout.RowHorizontalAlignment, err = flow.ParseHAlign(v.GetString("layout.row_horizontal_alignment")); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSetting, err)
	}
	if s.Layout.RowVerticalAlignment, err = flow.ParseVAlign(v.GetString("layout.row_vertical_alignment")); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSetting, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks ranges and enumerations.
func (s *Settings) Validate() error {
	if s.Width < 0 {
		return fmt.Errorf("%w: width %d is negative", ErrInvalidSetting, s.Width)
	}
	if s.IdealPerRow < 0 {
		return fmt.Errorf("%w: ideal_per_row %d is negative", ErrInvalidSetting, s.IdealPerRow)
	}
	if s.TabletBreakpoint < 0 {
		return fmt.Errorf("%w: tablet_breakpoint %g is negative", ErrInvalidSetting, s.TabletBreakpoint)
	}
	if s.Device != DeviceAuto {
		if _, err := flow.ParseDeviceClass(s.Device); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSetting, err)
		}
	}
	if err := s.Layout.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSetting, err)
	}
	return nil
}

// DeviceClass returns the pinned device class, or ok=false for "auto".
func (s *Settings) DeviceClass() (d flow.DeviceClass, ok bool) {
	if s.Device == DeviceAuto || s.Device == "" {
		return flow.Phone, false
	}
	d, err := flow.ParseDeviceClass(s.Device)
	return d, err == nil
}

// RegisterFlags adds the flags Load knows how to bind.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Defaults()
	fs.Int("width", d.Width, "container width in cells (0 = terminal width)")
	fs.String("device", d.Device, "device class: auto, phone or tablet")
	fs.Float64("tablet-breakpoint", d.TabletBreakpoint, "width at which auto device becomes tablet")
	fs.Int("ideal-per-row", d.IdealPerRow, "maximum tiles per row (0 = no limit)")
	fs.String("border", d.Border.String(), "tile border: single, rounded, double, thick or ascii")
	fs.Float64("side-padding", d.Layout.SidePadding, "space before the first and after the last tile in a row")
	fs.Float64("spacing-horizontal", d.Layout.SpacingHorizontal, "space between tiles in a row")
	fs.Float64("spacing-vertical", d.Layout.SpacingVertical, "space between rows")
	fs.String("row-align", d.Layout.RowHorizontalAlignment.String(), "row alignment: leading, center or trailing")
	fs.String("row-valign", d.Layout.RowVerticalAlignment.String(), "tile alignment within a row: top, center or bottom")
}
