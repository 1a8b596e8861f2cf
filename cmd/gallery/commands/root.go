package commands

import (
	"context"
	"fmt"

	"github.com/handiism/artist-gallery/internal/config"
	"github.com/handiism/artist-gallery/internal/logging"
	"github.com/handiism/artist-gallery/internal/printer"
	"github.com/spf13/cobra"
)

var versionString = "dev"

// options carries the state shared by every subcommand once the root
// command has loaded configuration.
type options struct {
	configPath string
	logLevel   string

	settings *config.Settings
	printer  *printer.Printer
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "gallery",
		Short: "Artist Gallery - browse artists in a terminal cover flow",
		Long: `Artist Gallery shows a collection of artist records as a cover-flow
carousel in the terminal. Drag, click or use the arrow keys to browse,
and search by name, medium, style, nationality or bio.

Run 'gallery browse' for the interactive view. The other commands print
the collection, inspect the carousel layout and check portrait links.`,
		Version: versionString,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $"+config.EnvConfigPath+")")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error, disabled")

	root.AddCommand(
		newBrowseCommand(opts),
		newListCommand(opts),
		newSearchCommand(opts),
		newShowCommand(opts),
		newLayoutCommand(opts),
		newReleaseCommand(opts),
		newCheckImagesCommand(opts),
		newExportCommand(opts),
	)
	return root
}

func (o *options) load(cmd *cobra.Command) error {
	o.printer = printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr())

	settings, err := config.Load(o.configPath)
	if err != nil {
		return o.printer.Error("Invalid configuration", err.Error(), []string{
			"Check the file passed with --config",
			"Check GALLERY_* environment variables",
		})
	}
	if o.logLevel != "" {
		settings.LogLevel = o.logLevel
	}
	o.settings = settings

	logCfg := settings.ToLoggingConfig()
	logCfg.Output = cmd.ErrOrStderr()
	logging.Init(logCfg)
	return nil
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	versionString = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}
