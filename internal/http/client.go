package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/handiism/artist-gallery/internal/logging"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

// ErrStatus is returned when the server answers with a non-200 status.
var ErrStatus = errors.New("unexpected HTTP status")

// maxBodyBytes bounds how much of an image response is read.
const maxBodyBytes = 16 << 20

// Options configures a Client.
type Options struct {
	// Timeout bounds each request. Zero means 30 seconds.
	Timeout time.Duration

	// UserAgent is sent with every request.
	UserAgent string

	// RatePerSecond and Burst pace outgoing requests. Zero disables pacing.
	RatePerSecond float64
	Burst         int

	// BreakerMaxFailures consecutive failures open the circuit for
	// BreakerTimeout. Zero disables the breaker.
	BreakerMaxFailures uint32
	BreakerTimeout     time.Duration

	// Transport overrides the underlying round tripper, mainly for tests.
	Transport http.RoundTripper
}

// Client fetches image bytes for the gallery.
//
// Client provides:
//   - Configured User-Agent header
//   - Timeout handling
//   - Request pacing with a token bucket
//   - A circuit breaker so a dead image host fails fast
//
// Example usage:
//
//	client := NewClient(Options{UserAgent: "ArtistGallery", Timeout: 30 * time.Second})
//	data, err := client.Get(ctx, "https://images.example.com/portrait.jpg")
type Client struct {
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[[]byte]
}

// NewClient creates a new Client from options.
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "ArtistGallery"
	}

	c := &Client{
		httpClient: &http.Client{
			Timeout:   opts.Timeout,
			Transport: opts.Transport,
		},
		userAgent: opts.UserAgent,
	}

	if opts.RatePerSecond > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RatePerSecond), burst)
	}

	if opts.BreakerMaxFailures > 0 {
		log := logging.With("http")
		maxFailures := opts.BreakerMaxFailures
		c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
			Name:        "image-host",
			MaxRequests: 1,
			Timeout:     opts.BreakerTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= maxFailures
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
			},
			// Cancellation says nothing about the host's health.
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, context.Canceled)
			},
		})
	}

	return c
}

// Get performs a GET request and returns the response body as bytes.
//
// Returns an error if:
//   - The context is done while waiting for the rate limiter
//   - The circuit breaker is open
//   - The request fails or the status is not 200 OK (wraps ErrStatus)
//   - Reading the body fails
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	if c.breaker == nil {
		return c.get(ctx, url)
	}
	return c.breaker.Execute(func() ([]byte, error) {
		return c.get(ctx, url)
	})
}

// BreakerState returns the breaker state, or closed when there is none.
func (c *Client) BreakerState() gobreaker.State {
	if c.breaker == nil {
		return gobreaker.StateClosed
	}
	return c.breaker.State()
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
}
