package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/grindlemire/flowboard/internal/board"
	"github.com/grindlemire/flowboard/internal/dashboard"
	"github.com/grindlemire/flowboard/internal/flow"
)

func newPackCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "pack FILE",
		Short: "Print the rows a dashboard packs into",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, b, err := a.loadBoard(args[0])
			if err != nil {
				return err
			}
			report := newPackReport(f, b, float64(a.width(cmd.OutOrStdout())))
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			writePackTable(cmd.OutOrStdout(), report)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

type packReport struct {
	Title  string      `json:"title,omitempty"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Device string      `json:"device"`
	Order  []string    `json:"order"`
	Rows   []packRow   `json:"rows"`
	Tiles  []packPlace `json:"tiles"`
}

type packRow struct {
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	FullBleed bool    `json:"full_bleed,omitempty"`
	Indices   []int   `json:"indices"`
}

type packPlace struct {
	Index  int     `json:"index"`
	ID     string  `json:"id"`
	Size   string  `json:"size"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func newPackReport(f *dashboard.File, b *board.Board, width float64) packReport {
	res := b.Measure(width)
	els := b.Elements()

	r := packReport{
		Title:  f.Title,
		Width:  res.Size.Width,
		Height: res.Size.Height,
		Device: b.DeviceClass(width).String(),
		Order:  els.IDs(),
		Rows:   make([]packRow, 0, len(res.Rows)),
		Tiles:  make([]packPlace, 0, res.Len()),
	}
	for _, row := range res.Rows {
		r.Rows = append(r.Rows, packRow{
			Y:         row.Frame.Y,
			Width:     row.Frame.Width,
			Height:    row.Frame.Height,
			FullBleed: row.FullBleed,
			Indices:   row.Indices,
		})
	}
	for _, p := range flow.Place(res, bounds(width, res), b.Config()) {
		el := els[p.Index]
		r.Tiles = append(r.Tiles, packPlace{
			Index:  p.Index,
			ID:     el.ID,
			Size:   el.Intent.String(),
			X:      p.Position.X,
			Y:      p.Position.Y,
			Width:  p.Size.Width,
			Height: p.Size.Height,
		})
	}
	return r
}

func writePackTable(w io.Writer, r packReport) {
	if r.Title != "" {
		fmt.Fprintln(w, titleStyle.Render(r.Title))
	}
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%g x %g, %s, %d rows", r.Width, r.Height, r.Device, len(r.Rows))))

	byIndex := make(map[int]packPlace, len(r.Tiles))
	for _, t := range r.Tiles {
		byIndex[t.Index] = t
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-4s %-5s %s %-24s %7s %7s %7s %7s", "ROW", "INDEX", idColumn("ID"), "SIZE", "X", "Y", "WIDTH", "HEIGHT")))
	for i, row := range r.Rows {
		label := fmt.Sprint(i)
		if row.FullBleed {
			label += "*"
		}
		for _, idx := range row.Indices {
			t := byIndex[idx]
			fmt.Fprintf(w, "%-4s %-5d %s %-24s %7g %7g %7g %7g\n",
				label, t.Index, idColumn(t.ID), t.Size, t.X, t.Y, t.Width, t.Height)
		}
	}
	if hasFullBleed(r.Rows) {
		fmt.Fprintln(w, mutedStyle.Render("* full-bleed row"))
	}
}

func hasFullBleed(rows []packRow) bool {
	for _, r := range rows {
		if r.FullBleed {
			return true
		}
	}
	return false
}

// idWidth is the width of the ID column in cells.
const idWidth = 16

// idColumn truncates and pads id to exactly idWidth cells.
func idColumn(id string) string {
	return runewidth.FillRight(runewidth.Truncate(id, idWidth, "~"), idWidth)
}
