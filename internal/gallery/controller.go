package gallery

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/handiism/artist-gallery/internal/carousel"
	"github.com/handiism/artist-gallery/internal/logging"
	"github.com/handiism/artist-gallery/internal/model"
	"github.com/rs/zerolog"
)

// Default tuning values.
const (
	DefaultRadius      = 4
	DefaultConcurrency = 9
)

// Source is the record collection the controller browses.
type Source interface {
	All() []model.Artist
	Search(query string) []model.Artist
	Count() int
}

// ImageCache preloads portraits. It is satisfied by *imagecache.Cache.
type ImageCache interface {
	Prefetch(ctx context.Context, artist model.Artist) bool
	IsLoading(id string) bool
}

// Result is the outcome of a search.
type Result struct {
	Records   []model.Artist
	Query     string
	Index     int
	Selected  *model.Artist
	NoResults bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithRadius sets how many records on each side of the center are
// prefetched.
func WithRadius(radius int) Option {
	return func(c *Controller) {
		if radius >= 0 {
			c.radius = radius
		}
	}
}

// WithConcurrency bounds the number of parallel prefetches.
func WithConcurrency(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithSeed makes the random start index reproducible. Zero keeps a random
// seed.
func WithSeed(seed uint64) Option {
	return func(c *Controller) {
		if seed != 0 {
			c.rng = rand.New(rand.NewPCG(seed, seed))
		}
	}
}

// WithOnSelect sets a callback fired after every selection change.
func WithOnSelect(fn func(model.Artist)) Option {
	return func(c *Controller) {
		c.onSelect = fn
	}
}

// WithOnProgress sets a callback fired as prefetches complete.
func WithOnProgress(fn func(ProgressEvent)) Option {
	return func(c *Controller) {
		c.onProgress = fn
	}
}

// WithAutoPrefetch makes the controller prefetch the window in the
// background, bounded by ctx, whenever the current index or the list
// changes. Wait blocks until those prefetches finish.
func WithAutoPrefetch(ctx context.Context) Option {
	return func(c *Controller) {
		c.autoPrefetch = ctx
	}
}

// WithEngineOptions passes options through to the carousel engine.
func WithEngineOptions(opts ...carousel.Option) Option {
	return func(c *Controller) {
		c.engineOpts = append(c.engineOpts, opts...)
	}
}

// Controller ties the record store, the carousel and the image cache
// together. It owns the filtered list, the query and the selection; the
// current index lives in the engine and every navigation path (drag, click,
// keys, Select) ends in the same selection update.
//
// Everything except PrefetchRecords must be called from one
// goroutine, normally the UI event loop.
type Controller struct {
	source Source
	images ImageCache
	engine *carousel.Engine
	log    zerolog.Logger

	radius      int
	concurrency int
	rng         *rand.Rand
	engineOpts  []carousel.Option

	records   []model.Artist
	query     string
	selected  *model.Artist
	lastIndex int

	autoPrefetch context.Context
	background   sync.WaitGroup

	mu     sync.RWMutex
	loaded map[string]struct{}

	onSelect   func(model.Artist)
	onProgress func(ProgressEvent)
}

// New creates a Controller showing every record from source.
func New(source Source, images ImageCache, opts ...Option) *Controller {
	c := &Controller{
		source:      source,
		images:      images,
		log:         logging.With("gallery"),
		radius:      DefaultRadius,
		concurrency: DefaultConcurrency,
		rng:         rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		loaded:      make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	engineOpts := append([]carousel.Option{carousel.WithOnSelect(c.selectFromEngine)}, c.engineOpts...)
	c.engine = carousel.New(nil, engineOpts...)
	c.Search("")
	return c
}

// Engine returns the carousel engine driven by the controller.
func (c *Controller) Engine() *carousel.Engine {
	return c.engine
}

// Search filters the records and moves to a random record of the result.
// A blank query shows everything. A query with no matches is not an error:
// the result has NoResults set and nothing is selected.
func (c *Controller) Search(query string) Result {
	query = strings.TrimSpace(query)
	records := c.source.Search(query)

	c.records = records
	c.query = query
	c.selected = nil

	index := 0
	if len(records) > 0 {
		index = c.rng.IntN(len(records))
		selected := records[index]
		c.selected = &selected
	}
	c.engine.SetItems(records, index)
	c.indexChanged()

	c.log.Debug().Str("query", query).Int("results", len(records)).Int("index", index).Msg("search")

	return Result{
		Records:   records,
		Query:     query,
		Index:     index,
		Selected:  c.selected,
		NoResults: query != "" && len(records) == 0,
	}
}

// ShowAll clears the query, recovering from a no-results state.
func (c *Controller) ShowAll() Result {
	return c.Search("")
}

// Select centers artist and makes it the selection. It returns false when
// artist is not in the current list or a drag is in progress.
func (c *Controller) Select(artist model.Artist) bool {
	index := c.indexOf(artist.ID)
	if index < 0 {
		return false
	}
	return c.engine.Select(index)
}

func (c *Controller) selectFromEngine(artist model.Artist) {
	c.setSelected(artist)
	if c.engine.CurrentIndex() != c.lastIndex {
		c.indexChanged()
	}
}

func (c *Controller) indexChanged() {
	c.lastIndex = c.engine.CurrentIndex()
	if c.autoPrefetch == nil {
		return
	}
	records := c.WindowRecords()
	if len(records) == 0 {
		return
	}
	ctx := c.autoPrefetch
	c.background.Add(1)
	go func() {
		defer c.background.Done()
		c.PrefetchRecords(ctx, records)
	}()
}

// Wait blocks until background prefetches started by WithAutoPrefetch
// have finished.
func (c *Controller) Wait() {
	c.background.Wait()
}

func (c *Controller) setSelected(artist model.Artist) {
	c.selected = &artist
	if c.onSelect != nil {
		c.onSelect(artist)
	}
}

func (c *Controller) indexOf(id string) int {
	for i, r := range c.records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// Selected returns the selected record, or nil when there is none.
func (c *Controller) Selected() *model.Artist {
	return c.selected
}

// Records returns the filtered list.
func (c *Controller) Records() []model.Artist {
	return c.records
}

// Query returns the active query.
func (c *Controller) Query() string {
	return c.query
}

// NoResults reports whether the active query matched nothing.
func (c *Controller) NoResults() bool {
	return c.query != "" && len(c.records) == 0
}

// CurrentIndex returns the centered position.
func (c *Controller) CurrentIndex() int {
	return c.engine.CurrentIndex()
}

// Window returns the inclusive index range to prefetch around the current
// index. For an empty list it returns (0, -1).
func (c *Controller) Window() (start, end int) {
	if len(c.records) == 0 {
		return 0, -1
	}
	current := c.engine.CurrentIndex()
	start = max(0, current-c.radius)
	end = min(len(c.records)-1, current+c.radius)
	return start, end
}

// WindowRecords returns the records inside Window.
func (c *Controller) WindowRecords() []model.Artist {
	start, end := c.Window()
	if end < start {
		return nil
	}
	out := make([]model.Artist, end-start+1)
	copy(out, c.records[start:end+1])
	return out
}

// Status returns the heading shown above the carousel.
func (c *Controller) Status() string {
	switch {
	case c.query == "":
		return fmt.Sprintf("Featured %d Artists", c.source.Count())
	case len(c.records) == 0:
		return fmt.Sprintf("No artists found for %q", c.query)
	default:
		return fmt.Sprintf("%d results for %q", len(c.records), c.query)
	}
}
