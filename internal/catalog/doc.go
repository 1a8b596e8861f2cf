// Package catalog is the record store for the gallery.
//
// The default collection is a YAML document compiled into the binary:
//
//	store := catalog.Default()
//	fmt.Println(store.Count()) // 10
//
//	for _, a := range store.Search("japanese") {
//	    fmt.Println(a.Name)
//	}
//
// Search is a case-insensitive substring match over name, medium, style,
// nationality and bio that keeps collection order. An empty query returns
// the whole collection.
//
// A different collection can be loaded from disk with Load; the file has
// the same shape as the embedded artists.yaml.
package catalog
