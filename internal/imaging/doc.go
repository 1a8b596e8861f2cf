// Package imaging provides image decoding, scaling and the small file
// helpers used when exporting portraits.
//
// # Image Processing
//
//	svc := imaging.NewService()
//
//	img, err := svc.Decode(ctx, data)         // JPEG, PNG, GIF, WebP
//	thumb := svc.Thumbnail(img, 20, 20)       // center-cropped, for the TUI
//	jpeg, err := svc.ResizeImage(ctx, data, 1000, 1000)
//
// # Files
//
//	name := imaging.SanitizeFileName("Marina Abramović: Portrait") + ".jpg"
//	err := imaging.EnsureDir(dir)
//	err = imaging.WriteFile(ctx, filepath.Join(dir, name), jpeg)
package imaging
