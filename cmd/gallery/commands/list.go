package commands

import (
	"math/rand/v2"

	"github.com/handiism/artist-gallery/internal/app"
	"github.com/handiism/artist-gallery/internal/model"
	"github.com/spf13/cobra"
)

func newListCommand(opts *options) *cobra.Command {
	var medium string
	var random int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List artists in collection order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.OpenStore(opts.settings)
			if err != nil {
				return opts.printer.Error("Cannot open catalog", err.Error(), nil)
			}

			var artists []model.Artist
			switch {
			case medium != "":
				artists = store.ByMedium(medium)
			case random > 0:
				seed := opts.settings.Seed
				if seed == 0 {
					seed = rand.Uint64()
				}
				artists = store.Random(random, rand.New(rand.NewPCG(seed, seed)))
			default:
				artists = store.All()
			}

			opts.printer.Heading("%d of %d artists", len(artists), store.Count())
			printArtistTable(opts, artists)
			return nil
		},
	}

	cmd.Flags().StringVar(&medium, "medium", "", "only artists whose medium contains this text")
	cmd.Flags().IntVar(&random, "random", 0, "pick this many artists at random")
	return cmd
}

func printArtistTable(opts *options, artists []model.Artist) {
	for _, a := range artists {
		opts.printer.Info("%4s  %-24s ", a.ID, a.Name)
		opts.printer.Faint("%s\n", a.Medium)
	}
}
