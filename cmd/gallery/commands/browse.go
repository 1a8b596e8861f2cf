package commands

import (
	"github.com/handiism/artist-gallery/internal/tui"
	"github.com/spf13/cobra"
)

func newBrowseCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive cover-flow browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(opts.settings)
		},
	}
}
