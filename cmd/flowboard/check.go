package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check PATH...",
		Short: "Validate and pack dashboard files",
		Long: `Check loads every dashboard file, validates it and packs it at the
configured width. Directories are searched for *.toml files; a trailing
/... searches recursively.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := collectDashboardFiles(args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no dashboard files found")
			}

			width := float64(a.width(cmd.OutOrStdout()))
			results, err := a.checkAll(cmd.Context(), files, width)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, r := range results {
				switch {
				case r.err != nil:
					failed++
					fmt.Fprintf(out, "%s %s: %v\n", errorStyle.Render("FAIL"), r.path, r.err)
				case r.warned():
					fmt.Fprintf(out, "%s %s: %d tiles, %d rows", warningStyle.Render("WARN"), r.path, r.tiles, r.rows)
					if r.outside > 0 {
						fmt.Fprintf(out, ", %d outside the %g-cell container", r.outside, width)
					}
					if len(r.unknownOrder) > 0 {
						fmt.Fprintf(out, ", order names unknown tiles %q", r.unknownOrder)
					}
					fmt.Fprintln(out)
				default:
					fmt.Fprintf(out, "%s %s: %d tiles, %d rows\n",
						successStyle.Render("ok"), r.path, r.tiles, r.rows)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errChecksFailed, failed, len(results))
			}
			return nil
		},
	}
}

type checkResult struct {
	path string
	// tiles and rows are the packed counts.
	tiles int
	rows  int
	// outside counts tiles placed beyond the container.
	outside int
	// unknownOrder lists order entries that name no tile.
	unknownOrder []string
	err          error
}

func (r checkResult) warned() bool {
	return r.outside > 0 || len(r.unknownOrder) > 0
}

// checkAll checks files concurrently. Each file gets its own board; the
// results keep the order of files. It stops early when ctx is cancelled.
func (a *app) checkAll(ctx context.Context, files []string, width float64) ([]checkResult, error) {
	results := make([]checkResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = a.checkFile(path, width)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// checkFile loads and packs one dashboard. Load errors are reported in the
// result rather than returned so one bad file does not hide the others.
func (a *app) checkFile(path string, width float64) checkResult {
	r := checkResult{path: path}
	f, b, err := a.loadBoard(path)
	if err != nil {
		r.err = err
		return r
	}

	res := b.Measure(width)
	r.tiles = res.Len()
	r.rows = len(res.Rows)

	container := bounds(width, res)
	for _, p := range b.Arrange(container) {
		if !container.ContainsRect(p.Rect()) {
			r.outside++
		}
	}

	els := b.Elements()
	for _, id := range f.Order {
		if els.Index(id) < 0 {
			r.unknownOrder = append(r.unknownOrder, id)
		}
	}
	return r
}

// collectDashboardFiles expands paths into dashboard files. Directories
// contribute their *.toml files; "dir/..." walks recursively.
func collectDashboardFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		if strings.HasSuffix(path, "/...") {
			root := strings.TrimSuffix(path, "/...")
			if root == "" {
				root = "."
			}
			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && strings.HasSuffix(p, ".toml") {
					files = append(files, p)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", root, err)
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("reading directory %s: %w", path, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".toml") {
				files = append(files, filepath.Join(path, entry.Name()))
			}
		}
	}

	return files, nil
}
