// Package gallery coordinates browsing: the filtered record list, the
// selection, the carousel position and portrait preloading.
//
// # Basic Usage
//
//	cache := imagecache.New(loader)
//	ctrl := gallery.New(catalog.Default(), cache,
//	    gallery.WithRadius(4),
//	    gallery.WithConcurrency(9),
//	    gallery.WithOnSelect(func(a model.Artist) {
//	        fmt.Println("now showing", a.Name)
//	    }),
//	)
//
//	res := ctrl.Search("sculpture")
//	if res.NoResults {
//	    fmt.Println(ctrl.Status()) // No artists found for "sculpture"
//	}
//
// # Navigation
//
// The controller owns a carousel.Engine. Drag release, click, arrow keys
// and Controller.Select all update the engine index and the selection
// together, and each fires the WithOnSelect callback once.
//
// # Prefetching
//
// PrefetchWindow loads the portraits within the configured radius of the
// center in parallel, bounded by the concurrency limit. Records already
// loaded or currently loading are skipped, and a failed load never stops
// the rest of the batch. Progress is reported through the WithOnProgress
// callback:
//
//	ctrl := gallery.New(store, cache, gallery.WithOnProgress(func(e gallery.ProgressEvent) {
//	    fmt.Printf("%d/%d %s\n", e.Done, e.Total, e.Artist.Name)
//	}))
//
// A UI loop should snapshot WindowRecords on its own goroutine and hand
// them to PrefetchRecords in the background.
package gallery
