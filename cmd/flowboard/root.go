package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/grindlemire/flowboard/internal/board"
	"github.com/grindlemire/flowboard/internal/config"
	"github.com/grindlemire/flowboard/internal/dashboard"
	"github.com/grindlemire/flowboard/internal/debug"
	"github.com/grindlemire/flowboard/internal/flow"
	"github.com/grindlemire/flowboard/internal/term"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
)

func versionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// app carries state shared by the subcommands of one invocation.
type app struct {
	cfgFile  string
	settings *config.Settings
	logger   *log.Logger
	closeLog func() error
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "flowboard",
		Short: "Preview flow-layout dashboards in the terminal",
		Long: titleStyle.Render("flowboard") + mutedStyle.Render(" - flow-layout dashboards in the terminal") + `

flowboard reads a dashboard file (TOML), packs its tiles into rows with
the flow layout engine and prints or draws the result. Tile sizes are
small, medium, large, small-phone-medium-pad, large-full-bleed or dynamic.

Settings come from --config, FLOWBOARD_* environment variables and flags.
Set FLOWBOARD_DEBUG to a file path to append debug logs there.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.teardown()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "settings file (TOML)")
	pf.BoolP("verbose", "v", false, "enable debug logging")
	config.RegisterFlags(pf)

	root.AddCommand(
		newPackCmd(a),
		newRenderCmd(a),
		newCheckCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	s, err := config.Load(config.LoadOptions{
		ConfigFile: a.cfgFile,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return err
	}
	a.settings = s

	logger, closeLog, err := debug.FromEnv(cmd.ErrOrStderr(), s.Verbose)
	if err != nil {
		return fmt.Errorf("opening debug log: %w", err)
	}
	a.logger = logger
	a.closeLog = closeLog
	if s.File != "" {
		a.logger.Debug("settings loaded", "file", s.File)
	}
	return nil
}

func (a *app) teardown() error {
	if a.closeLog == nil {
		return nil
	}
	return a.closeLog()
}

// width returns the container width for out: the configured width, the
// terminal width, or term.DefaultWidth.
func (a *app) width(out io.Writer) int {
	if a.settings.Width > 0 {
		return a.settings.Width
	}
	if f, ok := out.(*os.File); ok {
		return term.WidthOr(int(f.Fd()), term.DefaultWidth)
	}
	return term.DefaultWidth
}

// newBoard builds a board for f on top of the loaded settings. Values in
// the file override settings, except that an explicit --device or
// --ideal-per-row beats the file.
func (a *app) newBoard(f *dashboard.File) (*board.Board, error) {
	cfg, err := f.Layout.Apply(a.settings.Layout)
	if err != nil {
		return nil, fmt.Errorf("%s: layout: %w", f.Path, err)
	}

	opts := []board.Option{
		board.WithConfig(cfg),
		board.WithTabletBreakpoint(a.settings.TabletBreakpoint),
		board.WithLogger(a.logger.With("dashboard", f.Path)),
	}

	ideal := f.IdealPerRow
	if a.settings.IdealPerRow > 0 {
		ideal = a.settings.IdealPerRow
	}
	opts = append(opts, board.WithIdealPerRow(ideal))

	if d, ok := a.settings.DeviceClass(); ok {
		opts = append(opts, board.WithDeviceClass(d))
	} else if d, ok := f.DeviceClass(); ok {
		opts = append(opts, board.WithDeviceClass(d))
	}

	return board.New(f.Elements(), opts...), nil
}

// loadBoard loads the dashboard at path and builds its board.
func (a *app) loadBoard(path string) (*dashboard.File, *board.Board, error) {
	f, err := dashboard.Load(path)
	if err != nil {
		return nil, nil, err
	}
	b, err := a.newBoard(f)
	if err != nil {
		return nil, nil, err
	}
	return f, b, nil
}

// bounds returns the layout rectangle for a board measured at width.
func bounds(width float64, res flow.Result) flow.Rect {
	return flow.NewRect(0, 0, width, res.Size.Height)
}

var errChecksFailed = errors.New("one or more dashboards failed")
