package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	t.Setenv(EnvConfigPath, "")

	settings, err := Load("")
	require.NoError(t, err)

	defaults := DefaultSettings()
	assert.Equal(t, 4, settings.PrefetchRadius)
	assert.Equal(t, defaults.SpacingWide, settings.SpacingWide)
	assert.Equal(t, 15*time.Second, settings.LoadTimeout)
	assert.Equal(t, defaults.LogFile, settings.LogFile)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 4, settings.PrefetchRadius)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	yaml := "prefetch_radius: 2\nload_timeout: 3s\nuser_agent: test-agent\nspacing_narrow: 90\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	t.Setenv("GALLERY_PREFETCH_RADIUS", "6")
	t.Setenv("GALLERY_LOG_LEVEL", "debug")

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6, settings.PrefetchRadius, "env overrides file")
	assert.Equal(t, 3*time.Second, settings.LoadTimeout)
	assert.Equal(t, "test-agent", settings.UserAgent)
	assert.Equal(t, 90.0, settings.SpacingNarrow)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.Equal(t, 160.0, settings.SpacingWide, "untouched keys keep defaults")
}

func TestLoad_PathFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 42\n"), 0644))
	t.Setenv(EnvConfigPath, path)

	settings, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), settings.Seed)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_concurrent_prefetch: 0\n"), 0644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prefetch_radius: [1,\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	path := filepath.Join(t.TempDir(), "nested", "gallery.yaml")

	settings := DefaultSettings()
	settings.PrefetchRadius = 3
	settings.BreakerTimeout = 90 * time.Second
	require.NoError(t, settings.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.PrefetchRadius)
	assert.Equal(t, 90*time.Second, loaded.BreakerTimeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Settings)
		wantErr bool
	}{
		{"defaults", func(s *Settings) {}, false},
		{"zero radius allowed", func(s *Settings) { s.PrefetchRadius = 0 }, false},
		{"negative radius", func(s *Settings) { s.PrefetchRadius = -1 }, true},
		{"zero cell width", func(s *Settings) { s.CellWidthPx = 0 }, true},
		{"zero spacing", func(s *Settings) { s.SpacingWide = 0 }, true},
		{"zero thumbnail", func(s *Settings) { s.ThumbnailHeight = 0 }, true},
		{"zero rate", func(s *Settings) { s.FetchRate = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(s)
			err := s.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConversions(t *testing.T) {
	s := DefaultSettings()

	opts := s.ToClientOptions()
	assert.Equal(t, s.UserAgent, opts.UserAgent)
	assert.Equal(t, s.HTTPTimeout, opts.Timeout)
	assert.Equal(t, s.FetchBurst, opts.Burst)

	logCfg := s.ToLoggingConfig()
	assert.Equal(t, "info", logCfg.Level)
	assert.Equal(t, "json", logCfg.Format)
}
