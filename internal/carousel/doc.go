// Package carousel is the cover-flow interaction and layout engine.
//
// # Engine
//
// Engine keeps the centered index over an ordered list of artists and the
// state of the current drag gesture:
//
//	e := carousel.New(artists, carousel.WithOnSelect(func(a model.Artist) {
//	    fmt.Println("selected", a.Name)
//	}))
//
//	e.StartDrag(x0)
//	e.MoveDrag(x1, time.Since(last)) // elapsed is passed in, not measured
//	e.EndDrag()                      // commits and fires OnSelect once
//
//	e.HandleKey(carousel.KeyRight)   // one item, clamped
//	e.Select(3)                      // click; ignored while dragging
//
// # Release Resolution
//
// ResolveRelease converts the drag distance and the velocity at release
// into a target index. A release moves only when it travelled more than
// DistanceThreshold pixels or was faster than VelocityThreshold px/ms, and
// never by more than MaxJump items.
//
// # Layout
//
// Every card is placed by pure functions of its relative offset from the
// center: ComputeTransform, StackOrder and Opacity. Engine.Layouts applies
// them to the whole strip and must be recomputed whenever the index or the
// drag changes; nothing is cached per card.
package carousel
