package carousel

import (
	"math"
	"time"
)

// SettleDuration is how long a card takes to glide into place after a
// navigation commits.
const SettleDuration = 400 * time.Millisecond

// CubicBezier is a CSS-style timing curve through (0,0), (X1,Y1), (X2,Y2)
// and (1,1).
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// EaseOutQuint is the curve cubic-bezier(0.23, 1, 0.32, 1).
var EaseOutQuint = CubicBezier{X1: 0.23, Y1: 1, X2: 0.32, Y2: 1}

// At returns the eased progress for linear progress x in [0,1].
func (c CubicBezier) At(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	// Solve bezierX(t) = x with Newton's method, falling back to bisection.
	t := x
	for i := 0; i < 8; i++ {
		dx := bezier(t, c.X1, c.X2) - x
		if math.Abs(dx) < 1e-6 {
			return bezier(t, c.Y1, c.Y2)
		}
		d := bezierSlope(t, c.X1, c.X2)
		if math.Abs(d) < 1e-6 {
			break
		}
		t -= dx / d
	}

	lo, hi := 0.0, 1.0
	t = x
	for i := 0; i < 32; i++ {
		v := bezier(t, c.X1, c.X2)
		if math.Abs(v-x) < 1e-6 {
			break
		}
		if v < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return bezier(t, c.Y1, c.Y2)
}

func bezier(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}

func bezierSlope(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
}

// Settle animates the residual offset left after a navigation so cards
// glide to their new positions instead of jumping.
//
// The zero value is an inactive settle.
type Settle struct {
	from     float64
	start    time.Time
	duration time.Duration
	curve    CubicBezier
	active   bool
}

// NewSettle creates an inactive Settle with the given duration.
func NewSettle(duration time.Duration) *Settle {
	if duration <= 0 {
		duration = SettleDuration
	}
	return &Settle{duration: duration, curve: EaseOutQuint}
}

// Start begins a settle from residual at now. A zero residual leaves the
// settle inactive.
func (s *Settle) Start(residual float64, now time.Time) {
	if residual == 0 {
		s.active = false
		return
	}
	s.from = residual
	s.start = now
	s.active = true
}

// Cancel stops the animation immediately.
func (s *Settle) Cancel() {
	s.active = false
	s.from = 0
}

// Active reports whether the animation is still running at now.
func (s *Settle) Active(now time.Time) bool {
	return s.active && now.Sub(s.start) < s.duration
}

// Residual returns the offset still to be covered at now.
func (s *Settle) Residual(now time.Time) float64 {
	if !s.Active(now) {
		return 0
	}
	progress := float64(now.Sub(s.start)) / float64(s.duration)
	curve := s.curve
	if curve == (CubicBezier{}) {
		curve = EaseOutQuint
	}
	return s.from * (1 - curve.At(progress))
}
