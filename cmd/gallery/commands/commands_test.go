package commands

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	fcolor "github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/handiism/artist-gallery/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	prev := fcolor.NoColor
	fcolor.NoColor = true
	t.Cleanup(func() { fcolor.NoColor = prev })

	root := NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--log-level", "disabled"}, args...))

	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestRootShowsHelp(t *testing.T) {
	out, _, err := run(t)

	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "check-images")
}

func TestRootRejectsUnknownFlags(t *testing.T) {
	_, _, err := run(t, "--unknown-flag", "value")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	out, _, err := run(t, "list")

	require.NoError(t, err)
	assert.Contains(t, out, "10 of 10 artists")
	assert.Contains(t, out, "Yayoi Kusama")
	assert.Contains(t, out, "Gerhard Richter")
}

func TestListByMedium(t *testing.T) {
	out, _, err := run(t, "list", "--medium", "sculpture")

	require.NoError(t, err)
	assert.Contains(t, out, "Anish Kapoor")
	assert.NotContains(t, out, "Banksy")
}

func TestListRandom(t *testing.T) {
	out, _, err := run(t, "list", "--random", "3")

	require.NoError(t, err)
	assert.Contains(t, out, "3 of 10 artists")
}

func TestSearch(t *testing.T) {
	out, _, err := run(t, "search", "Kusama")

	require.NoError(t, err)
	assert.Contains(t, out, `1 results for "Kusama"`)
	assert.Contains(t, out, "Yayoi Kusama")
}

func TestSearchNoResults(t *testing.T) {
	out, _, err := run(t, "search", "zzz-no-match")

	require.NoError(t, err)
	assert.Contains(t, out, `No artists found for "zzz-no-match"`)
}

func TestSearchJSON(t *testing.T) {
	tests := []struct {
		query   string
		wantIDs []string
	}{
		{"Kusama", []string{"1"}},
		{"zzz-no-match", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			out, _, err := run(t, "search", "--json", tt.query)
			require.NoError(t, err)

			var artists []model.Artist
			require.NoError(t, json.Unmarshal([]byte(out), &artists))

			ids := make([]string, 0, len(artists))
			for _, a := range artists {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestShow(t *testing.T) {
	out, _, err := run(t, "show", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "Banksy")
	assert.Contains(t, out, "Street Art")
}

func TestShowJSON(t *testing.T) {
	out, _, err := run(t, "show", "--json", "1")
	require.NoError(t, err)

	var a model.Artist
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, "Yayoi Kusama", a.Name)
}

func TestShowUnknownID(t *testing.T) {
	_, errOut, err := run(t, "show", "999")

	assert.EqualError(t, err, "Artist not found")
	assert.Contains(t, errOut, `No artist has id "999".`)
}

func TestLayout(t *testing.T) {
	out, _, err := run(t, "layout", "--index", "5")

	require.NoError(t, err)
	assert.Contains(t, out, "current 5")
	assert.Contains(t, out, "spacing 160px")
	assert.Contains(t, out, "  5*  Jeff Koons")
}

func TestLayoutNarrow(t *testing.T) {
	out, _, err := run(t, "layout", "--width", "80")

	require.NoError(t, err)
	assert.Contains(t, out, "spacing 120px")
}

func TestRelease(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short slow drag", []string{"--index", "5", "--offset", "-80", "--velocity", "-1.0"}, "5 -> 6"},
		{"long fast drag", []string{"--index", "5", "--offset", "-200", "--velocity", "-3.0"}, "5 -> 7"},
		{"below thresholds", []string{"--index", "5", "--offset", "-20", "--velocity", "-0.1"}, "stays at 5"},
		{"clamped at start", []string{"--index", "0", "--offset", "200", "--velocity", "3"}, "stays at 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, append([]string{"release"}, tt.args...)...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

// portraitServer serves a PNG at /ok.png and 404 everywhere else.
func portraitServer(t *testing.T) *httptest.Server {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 30))
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ok.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(buf.Bytes())
	}))
	t.Cleanup(srv.Close)
	return srv
}

// writeConfig writes a catalog with a working portrait, a broken one and
// one without an image, and a config pointing at it.
func writeConfig(t *testing.T, serverURL string) string {
	t.Helper()
	dir := t.TempDir()

	catalogPath := filepath.Join(dir, "artists.yaml")
	catalog := fmt.Sprintf(`artists:
  - id: "1"
    name: Working
    medium: Painting
    bio: Has a portrait.
    image_url: %[1]s/ok.png
  - id: "2"
    name: Broken
    medium: Sculpture
    bio: Has a dead link.
    image_url: %[1]s/missing.png
  - id: "3"
    name: Blank
    medium: Drawing
    bio: Has no portrait.
`, serverURL)
	require.NoError(t, os.WriteFile(catalogPath, []byte(catalog), 0o644))

	configPath := filepath.Join(dir, "gallery.yaml")
	config := fmt.Sprintf("catalog_path: %s\nfetch_rate: 100\nfetch_burst: 10\n", catalogPath)
	require.NoError(t, os.WriteFile(configPath, []byte(config), 0o644))
	return configPath
}

func TestCheckImages(t *testing.T) {
	srv := portraitServer(t)
	cfg := writeConfig(t, srv.URL)

	out, _, err := run(t, "--config", cfg, "check-images")

	require.NoError(t, err)
	assert.Contains(t, out, "checking 3 portraits")
	assert.Contains(t, out, "1 loaded, 1 broken, 1 without image")
	assert.Contains(t, out, `gallery_imagecache_prefetch_total{result=loaded}`)
}

func TestCheckImagesStrict(t *testing.T) {
	srv := portraitServer(t)
	cfg := writeConfig(t, srv.URL)

	_, _, err := run(t, "--config", cfg, "check-images", "--strict")

	assert.EqualError(t, err, "1 portraits unavailable")
}

func TestExport(t *testing.T) {
	srv := portraitServer(t)
	cfg := writeConfig(t, srv.URL)
	outDir := filepath.Join(t.TempDir(), "portraits")

	out, _, err := run(t, "--config", cfg, "export", "--dir", outDir, "--max-size", "20")

	require.NoError(t, err)
	assert.Contains(t, out, "1 exported, 1 failed")

	f, err := os.Open(filepath.Join(outDir, "1 - Working.jpg"))
	require.NoError(t, err)
	defer f.Close()

	cfgImg, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 20, cfgImg.Width)
	assert.Equal(t, 15, cfgImg.Height)
}

func TestExportRequiresDir(t *testing.T) {
	_, _, err := run(t, "export")
	assert.Error(t, err)
}
