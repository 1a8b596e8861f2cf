package imaging

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func pngBytes(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Yayoi Kusama", "Yayoi Kusama"},
		{"file:with:colons", "file_with_colons"},
		{"file<with>brackets", "file_with_brackets"},
		{"file/with\\slashes", "file_with_slashes"},
		{"file|with|pipes", "file_with_pipes"},
		{"file?with*wildcards", "file_with_wildcards"},
		{"file\"with\"quotes", "file_with_quotes"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
		{"trailing spaces   ", "trailing spaces"},
		{"Marina Abramović", "Marina Abramović"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SanitizeFileName(tt.input); got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFitSize(t *testing.T) {
	tests := []struct {
		w, h, maxW, maxH int
		wantW, wantH     int
	}{
		{1500, 1000, 1000, 1000, 1000, 666},
		{800, 600, 1000, 1000, 800, 600},
		{1000, 2000, 500, 500, 250, 500},
		{5000, 1, 100, 100, 100, 1},
	}
	for _, tt := range tests {
		gotW, gotH := FitSize(tt.w, tt.h, tt.maxW, tt.maxH)
		if gotW != tt.wantW || gotH != tt.wantH {
			t.Errorf("FitSize(%d,%d,%d,%d) = %dx%d, want %dx%d",
				tt.w, tt.h, tt.maxW, tt.maxH, gotW, gotH, tt.wantW, tt.wantH)
		}
	}
}

func TestService_DecodeAndThumbnail(t *testing.T) {
	svc := NewService()
	data := pngBytes(t, 40, 20, color.RGBA{R: 255, A: 255})

	img, err := svc.Decode(context.Background(), data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 20 {
		t.Fatalf("Decode() bounds = %v", img.Bounds())
	}

	thumb := svc.Thumbnail(img, 8, 8)
	if thumb.Bounds().Dx() != 8 || thumb.Bounds().Dy() != 8 {
		t.Fatalf("Thumbnail() bounds = %v, want 8x8", thumb.Bounds())
	}
	r, g, b, _ := thumb.At(4, 4).RGBA()
	if r>>8 < 250 || g>>8 > 5 || b>>8 > 5 {
		t.Errorf("Thumbnail() center = (%d,%d,%d), want red", r>>8, g>>8, b>>8)
	}
}

func TestService_DecodeRejectsGarbage(t *testing.T) {
	if _, err := NewService().Decode(context.Background(), []byte("not an image")); err == nil {
		t.Error("Decode() should fail on garbage")
	}
}

func TestService_DecodeRespectsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewService().Decode(ctx, pngBytes(t, 2, 2, color.White)); err == nil {
		t.Error("Decode() should fail with a cancelled context")
	}
}

func TestService_ResizeImage(t *testing.T) {
	svc := NewService()
	data := pngBytes(t, 300, 150, color.RGBA{B: 255, A: 255})

	out, err := svc.ResizeImage(context.Background(), data, 100, 100)
	if err != nil {
		t.Fatalf("ResizeImage() error = %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("result is not JPEG: %v", err)
	}
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 50 {
		t.Errorf("ResizeImage() bounds = %v, want 100x50", img.Bounds())
	}

	if _, err := svc.ResizeImage(context.Background(), data, 0, 10); err == nil {
		t.Error("ResizeImage() should reject a zero box")
	}
}

func TestService_ConvertToJPEG(t *testing.T) {
	out, err := NewService().ConvertToJPEG(context.Background(), pngBytes(t, 4, 4, color.White))
	if err != nil {
		t.Fatalf("ConvertToJPEG() error = %v", err)
	}
	if _, err := jpeg.Decode(bytes.NewReader(out)); err != nil {
		t.Errorf("result is not JPEG: %v", err)
	}
}

func TestWriteFileAndEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	path := filepath.Join(dir, "x.jpg")
	if err := WriteFile(context.Background(), path, []byte("data")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "data" {
		t.Errorf("file content = %q", got)
	}
}
