// Package imagecache resolves and preloads artist portraits.
//
// The render path only asks cheap questions:
//
//	url, ok := cache.Resolve(artist)   // reference or "not available"
//	cache.IsLoading(artist.ID)         // show a spinner
//	img, ok := cache.Thumbnail(artist.ID)
//
// Loading happens in Prefetch, normally from a background goroutine:
//
//	cache := imagecache.New(imagecache.NewHTTPLoader(client, images, 20, 20),
//	    imagecache.WithTimeout(15*time.Second))
//	ok := cache.Prefetch(ctx, artist)
//
// A failed or timed-out load marks the artist as having no image for the
// life of the cache, so broken links are not fetched again on every
// scroll. Invalidate and InvalidateAll reset entries explicitly.
package imagecache
