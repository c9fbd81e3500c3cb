package recoil

import (
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat/distuv"
)

// Random supplies the engine's randomness.
type Random interface {
	// Float64 returns a uniform value in [0, 1].
	Float64() float64
	// InsideUnitSphere returns a uniform point with norm at most 1.
	InsideUnitSphere() r3.Vec
}

type uniformRandom struct {
	unit   distuv.Uniform
	signed distuv.Uniform
}

// NewRandom returns a Random backed by gonum uniform distributions on the
// global source.
func NewRandom() Random {
	return &uniformRandom{
		unit:   distuv.Uniform{Min: 0, Max: 1},
		signed: distuv.Uniform{Min: -1, Max: 1},
	}
}

func (r *uniformRandom) Float64() float64 {
	return r.unit.Rand()
}

func (r *uniformRandom) InsideUnitSphere() r3.Vec {
	for {
		v := r3.Vec{X: r.signed.Rand(), Y: r.signed.Rand(), Z: r.signed.Rand()}
		if r3.Norm2(v) <= 1 {
			return v
		}
	}
}

// shotMultiplier maps a uniform draw onto the per-shot [0.8, 1.2] spread.
func shotMultiplier(u float64) float64 {
	return 0.8 + 0.4*u
}
