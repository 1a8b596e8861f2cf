package commands

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/handiism/artist-gallery/internal/app"
	"github.com/handiism/artist-gallery/internal/gallery"
	"github.com/handiism/artist-gallery/internal/model"
	"github.com/spf13/cobra"
)

func newSearchCommand(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search artists by name, medium, style, nationality or bio",
		Long: `Search matches the query case-insensitively against each artist's
name, medium, style, nationality and bio. Results keep collection order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(opts.settings, nil)
			if err != nil {
				return opts.printer.Error("Cannot open catalog", err.Error(), nil)
			}

			ctrl := gallery.New(a.Store, a.Cache, a.ControllerOptions()...)
			res := ctrl.Search(strings.Join(args, " "))

			if asJSON {
				records := res.Records
				if records == nil {
					records = []model.Artist{}
				}
				return writeJSON(opts, records)
			}

			if res.NoResults {
				opts.printer.Warning("%s\n", ctrl.Status())
				return nil
			}
			opts.printer.Heading("%s", ctrl.Status())
			printArtistTable(opts, res.Records)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	return cmd
}

func writeJSON(opts *options, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	opts.printer.Info("%s\n", data)
	return nil
}
