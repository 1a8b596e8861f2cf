package commands

import (
	"time"

	"github.com/handiism/artist-gallery/internal/app"
	"github.com/handiism/artist-gallery/internal/carousel"
	"github.com/spf13/cobra"
)

func newLayoutCommand(opts *options) *cobra.Command {
	var index int
	var drag float64
	var width int

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the carousel placement of every card",
		Long: `Layout prints the transform, stacking order and opacity of each card
for a given centered index, optionally mid-drag. Offsets are in items,
translations in pixels and rotations in degrees.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.OpenStore(opts.settings)
			if err != nil {
				return opts.printer.Error("Cannot open catalog", err.Error(), nil)
			}

			s := opts.settings
			engine := carousel.New(store.All(), carousel.WithSpacing(
				carousel.SpacingFor(width, s.NarrowWidth, s.SpacingWide, s.SpacingNarrow)))
			if index >= 0 {
				engine.SetCurrent(index)
			}
			if drag != 0 {
				engine.StartDrag(0)
				engine.MoveDrag(drag, time.Millisecond)
			}

			p := opts.printer
			p.Heading("current %d, drag %.0fpx, spacing %.0fpx", engine.CurrentIndex(), drag, engine.Spacing())
			p.Faint("%4s  %-20s %7s %7s %6s %6s %5s %5s %4s\n",
				"idx", "name", "offset", "x", "z", "rotY", "scale", "stack", "op")
			for _, l := range engine.Layouts(0) {
				a, _ := engine.Item(l.Index)
				marker := " "
				if l.Centered {
					marker = "*"
				}
				p.Info("%3d%s  %-20.20s %7.2f %7.1f %6.1f %6.1f %5.2f %5d %4.2f\n",
					l.Index, marker, a.Name, l.Offset,
					l.Transform.TranslateX, l.Transform.TranslateZ, l.Transform.RotateY,
					l.Transform.Scale, l.Stack, l.Opacity)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&index, "index", -1, "centered index (default: middle)")
	cmd.Flags().Float64Var(&drag, "drag", 0, "simulated drag distance in pixels")
	cmd.Flags().IntVar(&width, "width", 120, "terminal width in columns, selects the spacing")
	return cmd
}
