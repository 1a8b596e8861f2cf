// Package app wires the gallery components from settings.
package app

import (
	"fmt"

	"github.com/handiism/artist-gallery/internal/catalog"
	"github.com/handiism/artist-gallery/internal/config"
	"github.com/handiism/artist-gallery/internal/gallery"
	"github.com/handiism/artist-gallery/internal/http"
	"github.com/handiism/artist-gallery/internal/imagecache"
	"github.com/handiism/artist-gallery/internal/imaging"
	"github.com/prometheus/client_golang/prometheus"
)

// App holds the long-lived components shared by the TUI and the CLI.
type App struct {
	Settings *config.Settings
	Store    *catalog.Store
	Client   *http.Client
	Images   *imaging.Service
	Cache    *imagecache.Cache
}

// New builds the components. reg may be nil.
func New(settings *config.Settings, reg prometheus.Registerer) (*App, error) {
	store, err := OpenStore(settings)
	if err != nil {
		return nil, err
	}

	client := http.NewClient(settings.ToClientOptions())
	images := imaging.NewService()
	loader := imagecache.NewHTTPLoader(client, images, settings.ThumbnailWidth, settings.ThumbnailHeight)

	cacheOpts := []imagecache.Option{imagecache.WithTimeout(settings.LoadTimeout)}
	if reg != nil {
		cacheOpts = append(cacheOpts, imagecache.WithRegisterer(reg))
	}

	return &App{
		Settings: settings,
		Store:    store,
		Client:   client,
		Images:   images,
		Cache:    imagecache.New(loader, cacheOpts...),
	}, nil
}

// OpenStore returns the configured catalog, or the built-in one.
func OpenStore(settings *config.Settings) (*catalog.Store, error) {
	if settings.CatalogPath == "" {
		return catalog.Default(), nil
	}
	store, err := catalog.Load(settings.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	return store, nil
}

// ControllerOptions returns the gallery options derived from settings.
func (a *App) ControllerOptions() []gallery.Option {
	return []gallery.Option{
		gallery.WithRadius(a.Settings.PrefetchRadius),
		gallery.WithConcurrency(a.Settings.MaxConcurrentPrefetch),
		gallery.WithSeed(a.Settings.Seed),
	}
}
