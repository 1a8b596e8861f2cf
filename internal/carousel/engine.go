package carousel

import (
	"time"

	"github.com/handiism/artist-gallery/internal/model"
)

// Key is a navigation key understood by the engine.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyEnter
	KeySpace
)

// ParseKey maps a key name as reported by the terminal to a Key.
func ParseKey(name string) Key {
	switch name {
	case "left":
		return KeyLeft
	case "right":
		return KeyRight
	case "enter":
		return KeyEnter
	case " ", "space":
		return KeySpace
	}
	return KeyNone
}

// Option configures an Engine.
type Option func(*Engine)

// WithOnSelect sets the selection callback. It fires exactly once per
// committed navigation: drag release, click, arrow key, or confirm.
func WithOnSelect(fn func(model.Artist)) Option {
	return func(e *Engine) {
		e.onSelect = fn
	}
}

// WithOnDragStart sets a hook that fires when a gesture begins. Hosts use
// it to cancel a running settle animation.
func WithOnDragStart(fn func()) Option {
	return func(e *Engine) {
		e.onDragStart = fn
	}
}

// WithSpacing sets the horizontal card spacing in pixels.
func WithSpacing(spacing float64) Option {
	return func(e *Engine) {
		if spacing > 0 {
			e.spacing = spacing
		}
	}
}

// WithDragScale sets how many pixels of drag move the strip by one item.
func WithDragScale(scale float64) Option {
	return func(e *Engine) {
		if scale > 0 {
			e.dragScale = scale
		}
	}
}

// Engine owns the carousel position and the live gesture.
//
// The engine is either idle or dragging. StartDrag, MoveDrag and EndDrag
// drive a gesture; Select and HandleKey are discrete navigation that
// commits immediately. Layout and Layouts are pure reads of the current
// state and should be recomputed on every change.
//
// Engine is not safe for concurrent use; it expects events from a single
// event loop.
type Engine struct {
	items   []model.Artist
	current int

	dragging   bool
	dragStart  float64
	dragOffset float64
	velocity   float64

	spacing   float64
	dragScale float64

	onSelect    func(model.Artist)
	onDragStart func()
}

// New creates an Engine over items, centered on the middle item.
func New(items []model.Artist, opts ...Option) *Engine {
	e := &Engine{
		spacing:   SpacingWide,
		dragScale: DragScale,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.SetItems(items, len(items)/2)
	return e
}

// SetItems replaces the collection and moves to index without firing the
// selection callback. Any gesture in progress is abandoned.
func (e *Engine) SetItems(items []model.Artist, index int) {
	e.items = items
	e.current = clamp(index, len(items))
	e.resetDrag()
}

// SetCurrent moves to index without firing the selection callback. Hosts
// use it to follow a selection made elsewhere.
func (e *Engine) SetCurrent(index int) {
	e.current = clamp(index, len(e.items))
}

// SetSpacing changes the horizontal card spacing, e.g. on resize.
func (e *Engine) SetSpacing(spacing float64) {
	if spacing > 0 {
		e.spacing = spacing
	}
}

// Len returns the number of items.
func (e *Engine) Len() int { return len(e.items) }

// CurrentIndex returns the centered index, 0 for an empty collection.
func (e *Engine) CurrentIndex() int { return e.current }

// Current returns the centered record.
func (e *Engine) Current() (model.Artist, bool) {
	if len(e.items) == 0 {
		return model.Artist{}, false
	}
	return e.items[e.current], true
}

// Item returns the record at index.
func (e *Engine) Item(index int) (model.Artist, bool) {
	if index < 0 || index >= len(e.items) {
		return model.Artist{}, false
	}
	return e.items[index], true
}

// IsDragging reports whether a gesture is in progress.
func (e *Engine) IsDragging() bool { return e.dragging }

// DragOffset returns the signed drag distance in pixels.
func (e *Engine) DragOffset() float64 { return e.dragOffset }

// Velocity returns the most recent drag speed in px/ms.
func (e *Engine) Velocity() float64 { return e.velocity }

// Spacing returns the horizontal card spacing in pixels.
func (e *Engine) Spacing() float64 { return e.spacing }

// StartDrag begins a gesture at position.
func (e *Engine) StartDrag(position float64) {
	e.dragging = true
	e.dragStart = position
	e.dragOffset = 0
	e.velocity = 0
	if e.onDragStart != nil {
		e.onDragStart()
	}
}

// MoveDrag updates the gesture with a new pointer position. elapsed is the
// time since the previous update; values under a millisecond count as one.
// The velocity is the instantaneous speed of this step only.
func (e *Engine) MoveDrag(position float64, elapsed time.Duration) {
	if !e.dragging {
		return
	}

	ms := float64(elapsed) / float64(time.Millisecond)
	if ms < 1 {
		ms = 1
	}

	newOffset := position - e.dragStart
	e.velocity = (newOffset - e.dragOffset) / ms
	e.dragOffset = newOffset
}

// EndDrag finishes the gesture, commits the resolved index and fires the
// selection callback once, even when the index did not change. It returns
// the committed index and whether it differs from the previous one.
// Calling EndDrag while idle does nothing.
func (e *Engine) EndDrag() (int, bool) {
	if !e.dragging {
		return e.current, false
	}

	previous := e.current
	target := ResolveRelease(e.dragOffset, e.velocity, e.current, len(e.items))
	e.resetDrag()

	if len(e.items) == 0 {
		return 0, false
	}

	e.current = target
	e.notify()
	return target, target != previous
}

// CancelDrag abandons the gesture without committing or notifying.
func (e *Engine) CancelDrag() {
	e.resetDrag()
}

// Select centers index and fires the selection callback. It is ignored
// while dragging so that the click ending a drag does not also select.
// Out-of-range indexes are clamped.
func (e *Engine) Select(index int) bool {
	if e.dragging || len(e.items) == 0 {
		return false
	}
	e.current = clamp(index, len(e.items))
	e.notify()
	return true
}

// HandleKey applies a navigation key. Left and right move one item,
// stopping at the ends; enter and space confirm the current item. It
// returns true when the key was consumed and must not reach the host.
// Navigation keys are consumed but do nothing while dragging.
func (e *Engine) HandleKey(key Key) bool {
	if e.dragging {
		return key != KeyNone
	}
	switch key {
	case KeyLeft:
		e.step(-1)
	case KeyRight:
		e.step(1)
	case KeyEnter, KeySpace:
		e.notify()
	default:
		return false
	}
	return true
}

func (e *Engine) step(delta int) {
	if len(e.items) == 0 {
		return
	}
	e.current = clamp(e.current+delta, len(e.items))
	e.notify()
}

func (e *Engine) notify() {
	if e.onSelect == nil || len(e.items) == 0 {
		return
	}
	e.onSelect(e.items[e.current])
}

func (e *Engine) resetDrag() {
	e.dragging = false
	e.dragStart = 0
	e.dragOffset = 0
	e.velocity = 0
}

// Layout computes the placement of the card at index. shift is added to
// every relative offset; renderers pass a settle residual here.
func (e *Engine) Layout(index int, shift float64) ItemLayout {
	offset := RelativeOffset(index, e.current, e.dragging, e.dragOffset, e.dragScale) + shift
	return ItemLayout{
		Index:     index,
		Offset:    offset,
		Centered:  IsCentered(offset),
		Transform: ComputeTransform(offset, e.spacing),
		Stack:     StackOrder(index - e.current),
		Opacity:   Opacity(offset),
	}
}

// Layouts computes the placement of every card in collection order.
func (e *Engine) Layouts(shift float64) []ItemLayout {
	out := make([]ItemLayout, len(e.items))
	for i := range e.items {
		out[i] = e.Layout(i, shift)
	}
	return out
}

// StripOffset returns the relative offset of item 0. The difference
// between two readings, taken before and after a navigation, is the
// residual a settle animation should start from.
func (e *Engine) StripOffset() float64 {
	return RelativeOffset(0, e.current, e.dragging, e.dragOffset, e.dragScale)
}
