package commands

import (
	"fmt"

	"github.com/handiism/artist-gallery/internal/app"
	"github.com/spf13/cobra"
)

func newShowCommand(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one artist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.OpenStore(opts.settings)
			if err != nil {
				return opts.printer.Error("Cannot open catalog", err.Error(), nil)
			}

			a, ok := store.ByID(args[0])
			if !ok {
				return opts.printer.Error("Artist not found",
					fmt.Sprintf("No artist has id %q.", args[0]),
					[]string{"Run 'gallery list' to see the available ids."})
			}

			if asJSON {
				return writeJSON(opts, a)
			}

			p := opts.printer
			p.Heading("%s", a.Name)
			p.Step("%s", a.Medium)
			if a.Style != "" {
				p.Info(" · %s", a.Style)
			}
			p.Info("\n")
			if a.Nationality != "" {
				p.Info("Nationality: %s\n", a.Nationality)
			}
			if a.HasBirthYear() {
				p.Info("Born:        %d\n", a.BirthYear)
			}
			if a.Website != "" {
				p.Info("Website:     %s\n", a.Website)
			}
			p.Info("\n%s\n", a.Bio)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the record as JSON")
	return cmd
}
