package commands

import (
	"math"

	"github.com/handiism/artist-gallery/internal/app"
	"github.com/handiism/artist-gallery/internal/carousel"
	"github.com/spf13/cobra"
)

func newReleaseCommand(opts *options) *cobra.Command {
	var index, count int
	var offset, velocity float64

	cmd := &cobra.Command{
		Use:   "release",
		Short: "Show where a drag release would land",
		Long: `Release resolves a drag gesture ending at --offset pixels with
--velocity pixels per millisecond, starting from --index. Negative values
move right through the collection.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.OpenStore(opts.settings)
			if err != nil {
				return opts.printer.Error("Cannot open catalog", err.Error(), nil)
			}
			if count <= 0 {
				count = store.Count()
			}
			if index < 0 {
				index = count / 2
			}

			target := carousel.ResolveRelease(offset, velocity, index, count)

			p := opts.printer
			p.Info("distance %.0fpx, speed %.2fpx/ms, jump %d\n",
				math.Abs(offset), math.Abs(velocity), carousel.JumpCount(math.Abs(offset), math.Abs(velocity)))
			if target == index {
				p.Step("stays at %d\n", target)
			} else {
				p.Step("%d -> %d\n", index, target)
			}
			if all := store.All(); target < len(all) {
				p.Info("lands on %s\n", all[target].Name)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&index, "index", -1, "index at the start of the drag (default: middle)")
	cmd.Flags().IntVar(&count, "count", 0, "collection size (default: catalog size)")
	cmd.Flags().Float64Var(&offset, "offset", 0, "drag distance in pixels")
	cmd.Flags().Float64Var(&velocity, "velocity", 0, "release velocity in pixels per millisecond")
	return cmd
}
