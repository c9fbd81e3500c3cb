package recoil

import "gonum.org/v1/gonum/spatial/r2"

// Accumulator holds the rendered recoil offset and the offset it chases.
type Accumulator struct {
	Current r2.Vec
	Target  r2.Vec
}

// Add folds a shot contribution into the target.
func (a *Accumulator) Add(delta r2.Vec) {
	a.Target = r2.Add(a.Target, delta)
}

// Tick moves Current toward Target at kickSpeed, or, while recovering,
// moves both Current and Target toward zero at recoverySpeed. The
// coefficient is dt*speed clamped to 1, so the approach depends on frame rate.
func (a *Accumulator) Tick(dt float64, recovering bool, kickSpeed, recoverySpeed float64) {
	if !recovering {
		a.Current = lerp2(a.Current, a.Target, dt*kickSpeed)
		return
	}
	a.Current = lerp2(a.Current, r2.Vec{}, dt*recoverySpeed)
	a.Target = lerp2(a.Target, r2.Vec{}, dt*recoverySpeed)
}

// Reset zeroes both vectors.
func (a *Accumulator) Reset() {
	a.Current = r2.Vec{}
	a.Target = r2.Vec{}
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func lerp2(from, to r2.Vec, t float64) r2.Vec {
	return r2.Add(from, r2.Scale(clamp01(t), r2.Sub(to, from)))
}
