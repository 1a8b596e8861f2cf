package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/handiism/artist-gallery/internal/http"
	"github.com/handiism/artist-gallery/internal/logging"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override settings.
const EnvPrefix = "GALLERY_"

// EnvConfigPath names the config file when no path is given explicitly.
const EnvConfigPath = "GALLERY_CONFIG"

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("invalid settings")

// Settings holds all configuration options.
type Settings struct {
	// Prefetch settings
	PrefetchRadius        int           `koanf:"prefetch_radius"`
	MaxConcurrentPrefetch int           `koanf:"max_concurrent_prefetch"`
	LoadTimeout           time.Duration `koanf:"load_timeout"`

	// Carousel layout
	SpacingWide   float64 `koanf:"spacing_wide"`
	SpacingNarrow float64 `koanf:"spacing_narrow"`
	NarrowWidth   int     `koanf:"narrow_width"` // terminal columns
	CellWidthPx   float64 `koanf:"cell_width_px"`

	// Image fetching
	HTTPTimeout        time.Duration `koanf:"http_timeout"`
	UserAgent          string        `koanf:"user_agent"`
	FetchRate          float64       `koanf:"fetch_rate"` // requests per second
	FetchBurst         int           `koanf:"fetch_burst"`
	BreakerMaxFailures uint32        `koanf:"breaker_max_failures"`
	BreakerTimeout     time.Duration `koanf:"breaker_timeout"`

	// Portraits
	ThumbnailWidth  int `koanf:"thumbnail_width"`
	ThumbnailHeight int `koanf:"thumbnail_height"`
	ExportMaxSize   int `koanf:"export_max_size"`

	// Data
	CatalogPath string `koanf:"catalog_path"` // empty uses the built-in catalog
	Seed        uint64 `koanf:"seed"`         // 0 picks a random seed

	// Logging
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"` // json, console
	LogFile   string `koanf:"log_file"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return &Settings{
		PrefetchRadius:        4,
		MaxConcurrentPrefetch: 9,
		LoadTimeout:           15 * time.Second,

		SpacingWide:   160,
		SpacingNarrow: 120,
		NarrowWidth:   100,
		CellWidthPx:   8,

		HTTPTimeout:        30 * time.Second,
		UserAgent:          "ArtistGallery",
		FetchRate:          10,
		FetchBurst:         5,
		BreakerMaxFailures: 5,
		BreakerTimeout:     30 * time.Second,

		ThumbnailWidth:  20,
		ThumbnailHeight: 20,
		ExportMaxSize:   1000,

		LogLevel:  "info",
		LogFormat: "json",
		LogFile:   filepath.Join(cacheDir, "artist-gallery", "gallery.log"),
	}
}

// Load builds Settings by layering defaults, an optional YAML file and
// GALLERY_* environment variables, lowest precedence first.
//
// If path is empty, GALLERY_CONFIG is consulted. A missing file is not an
// error; the defaults are used.
func Load(path string) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(DefaultSettings(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	// GALLERY_PREFETCH_RADIUS -> prefetch_radius
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	settings := &Settings{}
	if err := k.UnmarshalWithConf("", settings, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Save writes settings to a YAML file, creating parent directories.
func (s *Settings) Save(path string) error {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(s, "koanf"), nil); err != nil {
		return err
	}

	data, err := k.Marshal(yaml.Parser())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings the gallery cannot run with.
func (s *Settings) Validate() error {
	var problems []string
	if s.PrefetchRadius < 0 {
		problems = append(problems, "prefetch_radius must not be negative")
	}
	if s.MaxConcurrentPrefetch <= 0 {
		problems = append(problems, "max_concurrent_prefetch must be positive")
	}
	if s.SpacingWide <= 0 || s.SpacingNarrow <= 0 {
		problems = append(problems, "spacing must be positive")
	}
	if s.CellWidthPx <= 0 {
		problems = append(problems, "cell_width_px must be positive")
	}
	if s.ThumbnailWidth <= 0 || s.ThumbnailHeight <= 0 {
		problems = append(problems, "thumbnail size must be positive")
	}
	if s.FetchRate <= 0 || s.FetchBurst <= 0 {
		problems = append(problems, "fetch_rate and fetch_burst must be positive")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// ToClientOptions converts settings to image client options.
func (s *Settings) ToClientOptions() http.Options {
	return http.Options{
		Timeout:            s.HTTPTimeout,
		UserAgent:          s.UserAgent,
		RatePerSecond:      s.FetchRate,
		Burst:              s.FetchBurst,
		BreakerMaxFailures: s.BreakerMaxFailures,
		BreakerTimeout:     s.BreakerTimeout,
	}
}

// ToLoggingConfig converts settings to a logging configuration. The
// caller chooses the output.
func (s *Settings) ToLoggingConfig() logging.Config {
	return logging.Config{
		Level:     s.LogLevel,
		Format:    s.LogFormat,
		Timestamp: true,
	}
}
