package recoil

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// fixedRandom returns the same draws every call.
type fixedRandom struct {
	u      float64
	sphere r3.Vec
}

func (f fixedRandom) Float64() float64         { return f.u }
func (f fixedRandom) InsideUnitSphere() r3.Vec { return f.sphere }

// neutralRandom pins the per-shot multiplier to exactly 1.0.
var neutralRandom = fixedRandom{u: 0.5, sphere: r3.Vec{X: 1}}
