package carousel

import "math"

// Layout constants. Distances are in pixels, angles in degrees.
const (
	// DragScale is how many pixels of drag move the strip by one item.
	DragScale = 100.0

	// CenterBand is the half-width of the offset range treated as centered.
	CenterBand = 0.1

	// CenterScale is the scale of the centered card.
	CenterScale = 1.3

	// DepthStep is the translateZ applied per item of distance.
	DepthStep = -80.0

	// Rotation is the Y rotation magnitude of every side card.
	Rotation = 55.0

	// SideScale is the scale a side card would have at distance zero;
	// it shrinks by ScaleStep per item down to MinScale.
	SideScale = 1.15
	ScaleStep = 0.04
	MinScale  = 0.8

	// SpacingWide and SpacingNarrow are the horizontal distance between
	// neighbouring cards on wide and narrow viewports.
	SpacingWide   = 160.0
	SpacingNarrow = 120.0

	// MinOpacity is the floor for far cards; nothing is culled.
	MinOpacity = 0.8
)

// Stacking order steps by integer distance from the center.
const (
	StackCenter   = 1000
	StackAdjacent = 100
	StackSecond   = 50
	StackThird    = 25
	StackFourth   = 15
)

// Transform is the 3D placement of a card relative to the strip center.
type Transform struct {
	TranslateX float64 // pixels, negative is left
	TranslateZ float64 // pixels, negative recedes
	RotateY    float64 // degrees
	Scale      float64
}

// ItemLayout is everything a renderer needs to place one card.
type ItemLayout struct {
	Index     int
	Offset    float64
	Centered  bool
	Transform Transform
	Stack     int
	Opacity   float64
}

// RelativeOffset returns the signed distance, in items, of index from the
// current index. While dragging the drag offset shifts every item equally.
func RelativeOffset(index, current int, dragging bool, dragOffset, dragScale float64) float64 {
	offset := float64(index - current)
	if dragging && dragScale != 0 {
		offset += dragOffset / dragScale
	}
	return offset
}

// IsCentered reports whether offset falls inside the centered band.
func IsCentered(offset float64) bool {
	return math.Abs(offset) < CenterBand
}

// ComputeTransform maps a relative offset to a card transform.
//
// Side cards sit spacing*distance away from the center, recede by
// DepthStep per item and turn Rotation degrees toward the viewer, so a
// card on the left rotates positively and a card on the right negatively.
func ComputeTransform(offset, spacing float64) Transform {
	if IsCentered(offset) {
		return Transform{Scale: CenterScale}
	}

	distance := math.Abs(offset)
	t := Transform{
		TranslateX: spacing * distance,
		TranslateZ: DepthStep * distance,
		RotateY:    -Rotation,
		Scale:      math.Max(MinScale, SideScale-ScaleStep*distance),
	}
	if offset < 0 {
		t.TranslateX = -t.TranslateX
		t.RotateY = Rotation
	}
	return t
}

// StackOrder returns the stacking order for an integer distance from the
// center. It never increases with distance.
func StackOrder(distance int) int {
	if distance < 0 {
		distance = -distance
	}
	switch distance {
	case 0:
		return StackCenter
	case 1:
		return StackAdjacent
	case 2:
		return StackSecond
	case 3:
		return StackThird
	case 4:
		return StackFourth
	default:
		return max(1, 10-distance)
	}
}

// Opacity returns the card opacity for a relative offset. It never drops
// below MinOpacity.
func Opacity(offset float64) float64 {
	d := math.Abs(offset)
	switch {
	case d <= 2:
		return 1
	case d <= 3:
		return 0.95
	case d <= 4:
		return 0.9
	default:
		return math.Max(MinOpacity, 0.9-(d-4)*0.05)
	}
}

// SpacingFor picks the card spacing for a viewport width. Widths below
// narrowWidth use the narrow spacing.
func SpacingFor(width, narrowWidth int, wide, narrow float64) float64 {
	if width > 0 && width < narrowWidth {
		return narrow
	}
	return wide
}
