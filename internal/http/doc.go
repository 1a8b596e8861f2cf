// Package http provides the HTTP client used to fetch artist portraits.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Timeout handling
//   - Pacing with golang.org/x/time/rate
//   - Failing fast through a gobreaker circuit breaker
//
// # Basic Usage
//
//	client := http.NewClient(settings.ToClientOptions())
//	data, err := client.Get(ctx, artist.ImageURL)
//
// Errors are returned as-is; callers in this repository treat any error as
// "image not available" and never retry.
package http
