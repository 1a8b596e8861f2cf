package carousel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTransform_Centered(t *testing.T) {
	for _, offset := range []float64{0, 0.05, -0.099} {
		got := ComputeTransform(offset, SpacingWide)
		assert.Equal(t, Transform{Scale: CenterScale}, got, "offset %v", offset)
	}
}

func TestComputeTransform_Sides(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
		want   Transform
	}{
		{"right neighbour", 1, Transform{TranslateX: 160, TranslateZ: -80, RotateY: -55, Scale: 1.11}},
		{"left neighbour", -1, Transform{TranslateX: -160, TranslateZ: -80, RotateY: 55, Scale: 1.11}},
		{"far right floors scale", 20, Transform{TranslateX: 3200, TranslateZ: -1600, RotateY: -55, Scale: 0.8}},
		{"fractional left", -2.5, Transform{TranslateX: -400, TranslateZ: -200, RotateY: 55, Scale: 1.05}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTransform(tt.offset, SpacingWide)
			assert.InDelta(t, tt.want.TranslateX, got.TranslateX, 1e-9)
			assert.InDelta(t, tt.want.TranslateZ, got.TranslateZ, 1e-9)
			assert.InDelta(t, tt.want.RotateY, got.RotateY, 1e-9)
			assert.InDelta(t, tt.want.Scale, got.Scale, 1e-9)
		})
	}
}

func TestComputeTransform_ContinuousOutsideCenterBand(t *testing.T) {
	// Sweep the offset of a fixed item as a drag would and check that
	// consecutive samples never jump, except when crossing the center band.
	const step = 0.001
	prev := ComputeTransform(-3, SpacingWide)
	for o := -3 + step; o <= 3; o += step {
		cur := ComputeTransform(o, SpacingWide)
		if IsCentered(o) || IsCentered(o-step) {
			prev = cur
			continue
		}
		if math.Abs(cur.TranslateX-prev.TranslateX) > SpacingWide*step*1.01 {
			t.Fatalf("translateX jumped at %v: %v -> %v", o, prev.TranslateX, cur.TranslateX)
		}
		if math.Abs(cur.TranslateZ-prev.TranslateZ) > math.Abs(DepthStep)*step*1.01 {
			t.Fatalf("translateZ jumped at %v", o)
		}
		if math.Abs(cur.Scale-prev.Scale) > ScaleStep*step*1.01 {
			t.Fatalf("scale jumped at %v", o)
		}
		prev = cur
	}
}

func TestComputeTransform_ScaleMonotonic(t *testing.T) {
	prev := ComputeTransform(0.1, SpacingWide).Scale
	for d := 0.2; d < 15; d += 0.1 {
		s := ComputeTransform(d, SpacingWide).Scale
		assert.LessOrEqual(t, s, prev)
		assert.GreaterOrEqual(t, s, MinScale)
		prev = s
	}
}

func TestStackOrder(t *testing.T) {
	tests := []struct {
		distance int
		want     int
	}{
		{0, 1000}, {1, 100}, {-1, 100}, {2, 50}, {3, 25}, {4, 15},
		{5, 5}, {8, 2}, {9, 1}, {12, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StackOrder(tt.distance), "distance %d", tt.distance)
	}
}

func TestStackOrder_Monotonic(t *testing.T) {
	for d1 := 0; d1 < 30; d1++ {
		for d2 := d1 + 1; d2 < 30; d2++ {
			assert.GreaterOrEqual(t, StackOrder(d1), StackOrder(d2), "d1=%d d2=%d", d1, d2)
		}
	}
}

func TestOpacity(t *testing.T) {
	tests := []struct {
		offset float64
		want   float64
	}{
		{0, 1}, {1, 1}, {-2, 1}, {2.5, 0.95}, {3, 0.95}, {-4, 0.9},
		{5, 0.85}, {6, 0.8}, {50, 0.8},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Opacity(tt.offset), 1e-9, "offset %v", tt.offset)
	}
}

func TestOpacity_Floor(t *testing.T) {
	for d := -100.0; d <= 100; d += 0.25 {
		assert.GreaterOrEqual(t, Opacity(d), MinOpacity)
	}
}

func TestRelativeOffset(t *testing.T) {
	assert.Equal(t, 2.0, RelativeOffset(7, 5, false, -80, DragScale))
	assert.InDelta(t, 1.2, RelativeOffset(7, 5, true, -80, DragScale), 1e-9)
	assert.InDelta(t, -0.5, RelativeOffset(5, 5, true, -50, DragScale), 1e-9)
}

func TestSpacingFor(t *testing.T) {
	assert.Equal(t, SpacingNarrow, SpacingFor(60, 100, SpacingWide, SpacingNarrow))
	assert.Equal(t, SpacingWide, SpacingFor(120, 100, SpacingWide, SpacingNarrow))
	assert.Equal(t, SpacingWide, SpacingFor(0, 100, SpacingWide, SpacingNarrow))
}
