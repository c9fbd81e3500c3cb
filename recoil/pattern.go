package recoil

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r2"
)

// ErrEmptyPattern is returned when a recoil pattern has no steps.
var ErrEmptyPattern = errors.New("recoil: pattern has no steps")

// Up is the single upward kick used by an unconfigured Pattern.
var Up = r2.Vec{X: 0, Y: 1}

// DefaultPattern is substituted whenever a weapon is configured without steps.
var DefaultPattern = []r2.Vec{
	{X: 0, Y: 1},
	{X: -0.3, Y: 0.8},
	{X: 0.5, Y: 0.9},
	{X: -0.2, Y: 0.7},
	{X: 0.4, Y: 0.6},
	{X: -0.6, Y: 0.5},
	{X: 0.7, Y: 0.4},
	{X: -0.4, Y: 0.3},
	{X: 0.3, Y: 0.2},
	{X: 0, Y: 0.1},
}

// Pattern is an immutable, ordered table of per-shot recoil deltas.
// X is horizontal (yaw) and Y is vertical (pitch up).
type Pattern struct {
	steps []r2.Vec
}

// NewPattern copies steps into a new table.
func NewPattern(steps []r2.Vec) (*Pattern, error) {
	if len(steps) == 0 {
		return nil, ErrEmptyPattern
	}
	p := &Pattern{steps: make([]r2.Vec, len(steps))}
	copy(p.steps, steps)
	return p, nil
}

// MustPattern is NewPattern for tables known to be non-empty.
func MustPattern(steps []r2.Vec) *Pattern {
	p, err := NewPattern(steps)
	if err != nil {
		panic(err)
	}
	return p
}

// Next returns the delta at index. The caller keeps index in [0, Len()).
func (p *Pattern) Next(index int) r2.Vec {
	if p == nil || len(p.steps) == 0 {
		return Up
	}
	return p.steps[index]
}

// Len returns the number of steps.
func (p *Pattern) Len() int {
	if p == nil {
		return 0
	}
	return len(p.steps)
}

// Steps returns a copy of the table.
func (p *Pattern) Steps() []r2.Vec {
	if p == nil {
		return nil
	}
	out := make([]r2.Vec, len(p.steps))
	copy(out, p.steps)
	return out
}
