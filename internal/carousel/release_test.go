package carousel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRelease(t *testing.T) {
	tests := []struct {
		name     string
		offset   float64
		velocity float64
		current  int
		count    int
		want     int
	}{
		{"no movement", 0, 0, 5, 10, 5},
		{"short slow drag snaps back", -40, -0.3, 5, 10, 5},
		{"drag left past distance", -80, -1.0, 5, 10, 6},
		{"fast flick left jumps two", -200, -3.0, 5, 10, 7},
		{"drag right past distance", 80, 0.2, 5, 10, 4},
		{"velocity alone commits", -10, -0.8, 5, 10, 6},
		{"positive velocity without offset", 0, 0.8, 5, 10, 4},
		{"clamped at end", -300, -5, 9, 10, 9},
		{"clamped at start", 300, 5, 1, 10, 0},
		{"long slow drag capped", -500, -0.1, 2, 10, 4},
		{"empty collection", -200, -3, 0, 0, 0},
		{"single item", -200, -3, 0, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveRelease(tt.offset, tt.velocity, tt.current, tt.count)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJumpCount(t *testing.T) {
	tests := []struct {
		distance, speed float64
		want            int
	}{
		{60, 0, 1},
		{60, 2.0, 1},   // not above the high velocity threshold
		{60, 2.1, 2},   // ceil(2.1/1.5) = 2
		{60, 10, 2},    // capped
		{149, 0.1, 1},  // floor(149/75) = 1
		{150, 0.1, 2},  // floor(150/75) = 2
		{400, 0.1, 2},  // distance heuristic capped
		{400, 9.0, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, JumpCount(tt.distance, tt.speed), "distance %v speed %v", tt.distance, tt.speed)
	}
}

func TestResolveRelease_NeverMovesMoreThanMaxJump(t *testing.T) {
	for offset := -1000.0; offset <= 1000; offset += 37 {
		for v := -12.0; v <= 12; v += 0.7 {
			for current := 0; current < 10; current++ {
				got := ResolveRelease(offset, v, current, 10)
				if d := int(math.Abs(float64(got - current))); d > MaxJump {
					t.Fatalf("offset %v v %v current %d moved %d", offset, v, current, d)
				}
				if got < 0 || got >= 10 {
					t.Fatalf("offset %v v %v current %d out of range: %d", offset, v, current, got)
				}
			}
		}
	}
}
