// Package config provides configuration management for artist-gallery.
//
// Settings are layered, lowest precedence first:
//   - DefaultSettings()
//   - a YAML file (explicit path or GALLERY_CONFIG)
//   - GALLERY_* environment variables
//
// # Loading
//
//	settings, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Environment keys map to settings by dropping the prefix and lowercasing,
// so GALLERY_PREFETCH_RADIUS=6 sets prefetch_radius. Durations accept Go
// syntax such as "15s".
//
// # Saving
//
//	err := config.DefaultSettings().Save("/path/to/gallery.yaml")
package config
