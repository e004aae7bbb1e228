package driver

import "github.com/charmbracelet/harmonica"

// spinImpulse is the extra angle per frame a Spin input adds to an axis.
const spinImpulse = 0.15

// Axis is one rotation angle advanced by a per-frame rate. The rate is
// pulled toward Increment by a critically damped spring, so impulses decay
// back to the steady spin without overshoot.
type Axis struct {
	Angle     float64
	Rate      float64 // radians added per frame
	Increment float64 // steady-state rate

	ease    bool
	rateVel float64 // spring velocity of Rate
	spring  harmonica.Spring
}

// NewAxis creates an axis stepping increment radians per frame. With ease
// the axis starts at rest and spins up; otherwise it starts at full rate.
func NewAxis(fps int, increment float64, ease bool) Axis {
	a := Axis{
		Increment: increment,
		ease:      ease,
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped
		spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
	a.Reset()
	return a
}

// Advance moves the rate one spring step toward Increment and adds it to
// the angle. At rest on Increment the rate does not change.
func (a *Axis) Advance() {
	a.Rate, a.rateVel = a.spring.Update(a.Rate, a.rateVel, a.Increment)
	a.Angle += a.Rate
}

// Impulse adds v to the current rate.
func (a *Axis) Impulse(v float64) {
	a.Rate += v
}

// Reset zeroes the angle and returns the rate to its starting value.
func (a *Axis) Reset() {
	a.Angle = 0
	a.rateVel = 0
	a.Rate = a.Increment
	if a.ease {
		a.Rate = 0
	}
}
