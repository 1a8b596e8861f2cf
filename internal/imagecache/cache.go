package imagecache

import (
	"context"
	"errors"
	"image"
	"sync"
	"time"

	"github.com/handiism/artist-gallery/internal/logging"
	"github.com/handiism/artist-gallery/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// ErrNoImage is returned by loaders that are handed an empty reference.
var ErrNoImage = errors.New("no image reference")

// Loader materialises an image reference into a decoded image.
type Loader interface {
	Load(ctx context.Context, url string) (image.Image, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, url string) (image.Image, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, url string) (image.Image, error) {
	return f(ctx, url)
}

// entry is a resolved reference. An entry with present=false is terminal.
type entry struct {
	url     string
	present bool
	img     image.Image
}

// Stats is a snapshot of the cache contents.
type Stats struct {
	Resolved int // entries with a usable reference
	Absent   int // entries known to have no image
	Loaded   int // entries with a decoded image
	Loading  int
}

// Option configures a Cache.
type Option func(*Cache)

// WithTimeout bounds each underlying load. Zero means no bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Cache) {
		c.timeout = d
	}
}

// WithRegisterer registers the cache metrics on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *Cache) {
		c.metrics = NewMetrics(reg)
	}
}

// Cache maps artist IDs to resolved image references and decoded images.
//
// Resolve, IsLoading, IsResolved and Thumbnail never block on I/O and are
// meant to be called on every frame. Prefetch does the loading; at most one
// load per ID runs at a time and concurrent callers for the same ID share
// its result. A failed load is remembered as "no image" and never retried
// until the entry is invalidated.
//
// Cache is safe for concurrent use. Entries live for the life of the cache.
type Cache struct {
	loader  Loader
	timeout time.Duration
	metrics *Metrics
	log     zerolog.Logger

	mu      sync.RWMutex
	entries map[string]*entry
	loading map[string]struct{}

	group singleflight.Group
}

// New creates a Cache that materialises images with loader.
func New(loader Loader, opts ...Option) *Cache {
	c := &Cache{
		loader:  loader,
		entries: make(map[string]*entry),
		loading: make(map[string]struct{}),
		log:     logging.With("imagecache"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.metrics == nil {
		c.metrics = NewMetrics(nil)
	}
	return c
}

// Resolve returns the image reference for artist, deriving it from the
// record on first use. ok is false when the artist has no image or a
// previous load failed.
func (c *Cache) Resolve(artist model.Artist) (url string, ok bool) {
	c.mu.RLock()
	e, found := c.entries[artist.ID]
	c.mu.RUnlock()
	if found {
		c.metrics.resolves.WithLabelValues("hit").Inc()
		return e.url, e.present
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, found := c.entries[artist.ID]; found {
		c.metrics.resolves.WithLabelValues("hit").Inc()
		return e.url, e.present
	}
	c.metrics.resolves.WithLabelValues("miss").Inc()
	e = &entry{url: artist.ImageURL, present: artist.HasImage()}
	c.entries[artist.ID] = e
	return e.url, e.present
}

// Prefetch loads the artist's image and reports whether it is available.
//
// It returns false at once if there is no reference or an earlier load
// failed, and true at once if the image is already loaded. Otherwise the
// ID is marked loading for the duration of the load.
func (c *Cache) Prefetch(ctx context.Context, artist model.Artist) bool {
	url, ok := c.Resolve(artist)
	if !ok {
		c.metrics.prefetches.WithLabelValues(ResultNoImage).Inc()
		return false
	}

	c.mu.RLock()
	loaded := c.entries[artist.ID] != nil && c.entries[artist.ID].img != nil
	c.mu.RUnlock()
	if loaded {
		c.metrics.prefetches.WithLabelValues(ResultCached).Inc()
		return true
	}

	v, _, _ := c.group.Do(artist.ID, func() (any, error) {
		return c.load(ctx, artist.ID, url), nil
	})
	return v.(bool)
}

func (c *Cache) load(ctx context.Context, id, url string) bool {
	c.mu.Lock()
	if e, ok := c.entries[id]; ok && e.img != nil {
		c.mu.Unlock()
		return true
	}
	c.loading[id] = struct{}{}
	c.mu.Unlock()
	c.metrics.inFlight.Inc()

	defer func() {
		c.mu.Lock()
		delete(c.loading, id)
		c.mu.Unlock()
		c.metrics.inFlight.Dec()
	}()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	img, err := c.loader.Load(ctx, url)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, found := c.entries[id]
	if !found {
		// Invalidated while loading; the result still counts.
		e = &entry{url: url, present: true}
		c.entries[id] = e
	}

	if err != nil {
		e.url, e.present, e.img = "", false, nil
		c.metrics.prefetches.WithLabelValues(ResultFailed).Inc()
		c.log.Debug().Str("id", id).Str("url", url).Err(err).Msg("image load failed")
		return false
	}

	e.img = img
	c.metrics.prefetches.WithLabelValues(ResultLoaded).Inc()
	c.log.Debug().Str("id", id).Dur("took", time.Since(start)).Msg("image loaded")
	return true
}

// IsLoading reports whether a load for id is in flight.
func (c *Cache) IsLoading(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.loading[id]
	return ok
}

// IsResolved reports whether id has a usable reference.
func (c *Cache) IsResolved(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[id]
	return ok && e.present
}

// Thumbnail returns the decoded image for id once a prefetch succeeded.
func (c *Cache) Thumbnail(id string) (image.Image, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[id]
	if !ok || e.img == nil {
		return nil, false
	}
	return e.img, true
}

// Invalidate forgets id so the next Resolve derives it again.
func (c *Cache) Invalidate(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
}

// InvalidateAll forgets every entry. Loads in flight still finish and
// store their result.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
}

// Stats returns a snapshot of the cache contents.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Stats{Loading: len(c.loading)}
	for _, e := range c.entries {
		if !e.present {
			s.Absent++
			continue
		}
		s.Resolved++
		if e.img != nil {
			s.Loaded++
		}
	}
	return s
}
