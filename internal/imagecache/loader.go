package imagecache

import (
	"context"
	"image"

	"github.com/handiism/artist-gallery/internal/http"
	"github.com/handiism/artist-gallery/internal/imaging"
)

// HTTPLoader fetches portraits over HTTP and scales them to thumbnails.
type HTTPLoader struct {
	client *http.Client
	images *imaging.Service
	width  int
	height int
}

// NewHTTPLoader creates a loader producing width x height thumbnails.
func NewHTTPLoader(client *http.Client, images *imaging.Service, width, height int) *HTTPLoader {
	return &HTTPLoader{client: client, images: images, width: width, height: height}
}

// Load implements Loader.
func (l *HTTPLoader) Load(ctx context.Context, url string) (image.Image, error) {
	if url == "" {
		return nil, ErrNoImage
	}

	data, err := l.client.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	img, err := l.images.Decode(ctx, data)
	if err != nil {
		return nil, err
	}
	return l.images.Thumbnail(img, l.width, l.height), nil
}
