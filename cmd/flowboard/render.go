package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/grindlemire/flowboard/internal/render"
)

func newRenderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render FILE",
		Short: "Draw a dashboard at the terminal width",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, b, err := a.loadBoard(args[0])
			if err != nil {
				return err
			}

			width := a.width(cmd.OutOrStdout())
			res := b.Measure(float64(width))
			placements := b.Arrange(bounds(float64(width), res))

			// Oversized tiles may extend past the container.
			cw := width
			for _, p := range placements {
				cw = max(cw, int(math.Ceil(p.Rect().Right())))
			}
			ch := int(math.Ceil(res.Size.Height))
			a.logger.Debug("rendering", "width", cw, "height", ch, "tiles", len(placements), "passes", b.Passes())

			out := cmd.OutOrStdout()
			if f.Title != "" {
				fmt.Fprintln(out, titleStyle.Render(f.Title))
			}
			fmt.Fprintln(out, render.Board(b.Elements(), placements, cw, ch, a.settings.Border))
			return nil
		},
	}
}
