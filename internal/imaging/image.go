package imaging

import (
	"bytes"
	"context"
	"errors"
	"image"
	_ "image/gif" // GIF decoder registration
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// ErrEmptyImage is returned for zero-sized images or target sizes.
var ErrEmptyImage = errors.New("empty image")

// Service provides image processing for artist portraits.
//
// Service is used to:
//   - Decode downloaded portraits (JPEG, PNG, GIF, WebP)
//   - Scale them to terminal thumbnails for the carousel
//   - Resize and convert them to JPEG for export
//
// Example usage:
//
//	svc := NewService()
//	img, err := svc.Decode(ctx, data)
//	thumb := svc.Thumbnail(img, 20, 20)
type Service struct{}

// NewService creates a new Service.
func NewService() *Service {
	return &Service{}
}

// Decode decodes image data in any registered format.
func (s *Service) Decode(ctx context.Context, data []byte) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	return img, nil
}

// FitSize returns the largest size with the aspect ratio of width x height
// that fits within maxWidth x maxHeight. Images already inside the box
// keep their size. Results are at least 1x1.
func FitSize(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= maxWidth && height <= maxHeight {
		return width, height
	}

	ratio := float64(width) / float64(height)
	if float64(maxWidth)/float64(maxHeight) > ratio {
		// Height is the limiting factor
		width = int(float64(maxHeight) * ratio)
		height = maxHeight
	} else {
		// Width is the limiting factor
		height = int(float64(maxWidth) / ratio)
		width = maxWidth
	}
	return max(width, 1), max(height, 1)
}

// Thumbnail scales img to fill exactly width x height, cropping the longer
// side around the center. Cards are square, so portraits are cropped
// rather than letterboxed.
func (s *Service) Thumbnail(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return dst
	}

	src := img.Bounds()
	crop := src
	targetRatio := float64(width) / float64(height)
	srcRatio := float64(src.Dx()) / float64(src.Dy())
	if srcRatio > targetRatio {
		w := int(float64(src.Dy()) * targetRatio)
		x0 := src.Min.X + (src.Dx()-w)/2
		crop = image.Rect(x0, src.Min.Y, x0+w, src.Max.Y)
	} else if srcRatio < targetRatio {
		h := int(float64(src.Dx()) / targetRatio)
		y0 := src.Min.Y + (src.Dy()-h)/2
		crop = image.Rect(src.Min.X, y0, src.Max.X, y0+h)
	}

	// Thumbnails are tiny; bilinear is indistinguishable from Catmull-Rom here.
	draw.BiLinear.Scale(dst, dst.Bounds(), img, crop, draw.Over, nil)
	return dst
}

// ResizeImage resizes image data to fit within maxWidth x maxHeight,
// preserving aspect ratio, and returns it JPEG-encoded.
//
// The Catmull-Rom algorithm is used for high-quality resizing.
func (s *Service) ResizeImage(ctx context.Context, data []byte, maxWidth, maxHeight int) ([]byte, error) {
	if maxWidth <= 0 || maxHeight <= 0 {
		return nil, ErrEmptyImage
	}

	img, err := s.Decode(ctx, data)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width, height := FitSize(bounds.Dx(), bounds.Dy(), maxWidth, maxHeight)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return encodeJPEG(dst)
}

// ConvertToJPEG re-encodes image data as JPEG with 90% quality.
func (s *Service) ConvertToJPEG(ctx context.Context, data []byte) ([]byte, error) {
	img, err := s.Decode(ctx, data)
	if err != nil {
		return nil, err
	}
	return encodeJPEG(img)
}

func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
