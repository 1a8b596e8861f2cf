package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/handiism/artist-gallery/internal/app"
	"github.com/handiism/artist-gallery/internal/imaging"
	"github.com/handiism/artist-gallery/internal/model"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newExportCommand(opts *options) *cobra.Command {
	var dir string
	var maxSize int
	var original bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download every portrait as a JPEG file",
		Long: `Export fetches each artist's portrait, scales it to fit --max-size
pixels (or keeps its size with --original) and writes it to --dir as "<id> - <name>.jpg". Artists without a
portrait are skipped and a failed download never stops the others.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(opts.settings, nil)
			if err != nil {
				return opts.printer.Error("Cannot open catalog", err.Error(), nil)
			}
			switch {
			case original:
				maxSize = 0
			case maxSize <= 0:
				maxSize = opts.settings.ExportMaxSize
			}
			if err := imaging.EnsureDir(dir); err != nil {
				return opts.printer.Error("Cannot create output directory", err.Error(), nil)
			}

			p := opts.printer
			var mu sync.Mutex
			var exported, failed int

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(opts.settings.MaxConcurrentPrefetch)

			for _, artist := range a.Store.All() {
				if !artist.HasImage() {
					continue
				}
				g.Go(func() error {
					path, err := exportPortrait(ctx, a, artist, dir, maxSize)

					mu.Lock()
					defer mu.Unlock()
					if err != nil {
						failed++
						p.Failure("%s: %v\n", artist.Name, err)
						return nil // Continue with other portraits
					}
					exported++
					p.Success("%s\n", path)
					return nil
				})
			}
			_ = g.Wait()

			p.Heading("%d exported, %d failed", exported, failed)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "output directory")
	cmd.Flags().IntVar(&maxSize, "max-size", 0, "longest edge in pixels (default: export_max_size)")
	cmd.Flags().BoolVar(&original, "original", false, "keep the original size, only convert to JPEG")
	_ = cmd.MarkFlagRequired("dir")
	return cmd
}

func exportPortrait(ctx context.Context, a *app.App, artist model.Artist, dir string, maxSize int) (string, error) {
	data, err := a.Client.Get(ctx, artist.ImageURL)
	if err != nil {
		return "", err
	}

	var jpeg []byte
	if maxSize > 0 {
		jpeg, err = a.Images.ResizeImage(ctx, data, maxSize, maxSize)
	} else {
		jpeg, err = a.Images.ConvertToJPEG(ctx, data)
	}
	if err != nil {
		return "", fmt.Errorf("convert: %w", err)
	}

	name := imaging.SanitizeFileName(fmt.Sprintf("%s - %s", artist.ID, artist.Name)) + ".jpg"
	path := filepath.Join(dir, name)
	if err := imaging.WriteFile(ctx, path, jpeg); err != nil {
		return "", err
	}
	return path, nil
}
