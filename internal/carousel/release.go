package carousel

import "math"

// Release thresholds.
const (
	// DistanceThreshold is the drag distance, in pixels, past which a
	// release moves the carousel.
	DistanceThreshold = 50.0

	// VelocityThreshold is the release speed, in px/ms, past which a
	// release moves the carousel regardless of distance.
	VelocityThreshold = 0.5

	// HighVelocityThreshold is the speed past which a flick may skip items.
	HighVelocityThreshold = 2.0

	// MaxJump is the most items a single release can move.
	MaxJump = 2
)

// ResolveRelease turns a finished drag into a target index.
//
// offset is the signed drag distance in pixels and velocity the signed
// speed in px/ms at release. A drag to the left (negative) moves forward.
// The result is clamped to [0, count-1]; with count <= 0 it returns 0.
//
// The jump count combines two heuristics:
//   - speed above HighVelocityThreshold gives min(2, ceil(|v|/1.5))
//   - distance above twice DistanceThreshold gives floor(dist/75)
//
// and the larger wins, bounded by MaxJump.
func ResolveRelease(offset, velocity float64, current, count int) int {
	if count <= 0 {
		return 0
	}
	current = clamp(current, count)

	distance := math.Abs(offset)
	speed := math.Abs(velocity)

	if distance <= DistanceThreshold && speed <= VelocityThreshold {
		return current
	}

	jump := JumpCount(distance, speed)

	switch {
	case offset < 0 || velocity < -VelocityThreshold:
		return min(count-1, current+jump)
	case offset > 0 || velocity > VelocityThreshold:
		return max(0, current-jump)
	}
	return current
}

// JumpCount returns how many items a committed release moves, given the
// absolute drag distance and speed.
func JumpCount(distance, speed float64) int {
	jump := 1

	if speed > HighVelocityThreshold {
		jump = min(MaxJump, int(math.Ceil(speed/1.5)))
	}

	if distance > DistanceThreshold*2 {
		jump = max(jump, int(math.Floor(distance/(DistanceThreshold*1.5))))
	}

	return min(jump, MaxJump)
}

func clamp(index, count int) int {
	if count <= 0 || index < 0 {
		return 0
	}
	if index >= count {
		return count - 1
	}
	return index
}
