package gallery

import (
	"context"
	"sync/atomic"

	"github.com/handiism/artist-gallery/internal/model"
	"golang.org/x/sync/errgroup"
)

// ProgressEvent reports a finished prefetch.
type ProgressEvent struct {
	Artist model.Artist
	Loaded bool
	Done   int
	Total  int
}

// Report summarises a prefetch batch.
type Report struct {
	Attempted int
	Loaded    int
	Failed    int
	Skipped   int
}

// PrefetchWindow prefetches the records around the current index. It must
// be called from the UI goroutine; use WindowRecords and PrefetchRecords to
// run the loading elsewhere.
func (c *Controller) PrefetchWindow(ctx context.Context) Report {
	return c.PrefetchRecords(ctx, c.WindowRecords())
}

// PrefetchRecords loads records in parallel, skipping those already loaded
// or loading. One failure never stops the others. It is safe to call from
// any goroutine.
func (c *Controller) PrefetchRecords(ctx context.Context, records []model.Artist) Report {
	var report Report
	var batch []model.Artist
	for _, r := range records {
		if c.isLoaded(r.ID) || c.images.IsLoading(r.ID) {
			report.Skipped++
			continue
		}
		batch = append(batch, r)
	}
	report.Attempted = len(batch)
	if len(batch) == 0 {
		return report
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	var loaded, failed, done int32
	for _, artist := range batch {
		g.Go(func() error {
			ok := c.images.Prefetch(ctx, artist)
			if ok {
				c.markLoaded(artist.ID)
				atomic.AddInt32(&loaded, 1)
			} else {
				atomic.AddInt32(&failed, 1)
			}
			c.progress(ProgressEvent{
				Artist: artist,
				Loaded: ok,
				Done:   int(atomic.AddInt32(&done, 1)),
				Total:  len(batch),
			})
			return nil
		})
	}
	_ = g.Wait()

	report.Loaded = int(loaded)
	report.Failed = int(failed)
	c.log.Debug().
		Int("attempted", report.Attempted).
		Int("loaded", report.Loaded).
		Int("failed", report.Failed).
		Int("skipped", report.Skipped).
		Msg("prefetch finished")
	return report
}

// Progress returns how many records of the current list have a loaded
// portrait.
func (c *Controller) Progress() (loaded, total int, percent float64) {
	total = len(c.records)
	if total == 0 {
		return 0, 0, 0
	}
	for _, r := range c.records {
		if c.isLoaded(r.ID) {
			loaded++
		}
	}
	return loaded, total, float64(loaded) / float64(total) * 100
}

func (c *Controller) isLoaded(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.loaded[id]
	return ok
}

func (c *Controller) markLoaded(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded[id] = struct{}{}
}

func (c *Controller) progress(event ProgressEvent) {
	if c.onProgress != nil {
		c.onProgress(event)
	}
}
