package recoil

import (
	"errors"
	"fmt"

	"github.com/tanema/gween/ease"
)

// ErrUnknownCurve is returned by ParseCurve for names it does not recognise.
var ErrUnknownCurve = errors.New("recoil: unknown falloff curve")

// Smoothstep is a cubic ease-in-out with flat tangents at both ends.
func Smoothstep(t, b, c, d float32) float32 {
	t /= d
	return c*t*t*(3-2*t) + b
}

// Constant ignores t and stays at the beginning value.
func Constant(t, b, c, d float32) float32 {
	return b
}

var curves = map[string]ease.TweenFunc{
	"smoothstep":   Smoothstep,
	"constant":     Constant,
	"linear":       ease.Linear,
	"in_quad":      ease.InQuad,
	"out_quad":     ease.OutQuad,
	"in_out_quad":  ease.InOutQuad,
	"in_cubic":     ease.InCubic,
	"out_cubic":    ease.OutCubic,
	"in_out_cubic": ease.InOutCubic,
	"in_out_sine":  ease.InOutSine,
}

// ParseCurve looks up a falloff curve by name. Only curves that never
// overshoot are registered, so every falloff built from them is monotonic.
func ParseCurve(name string) (ease.TweenFunc, error) {
	if name == "" {
		return Smoothstep, nil
	}
	fn, ok := curves[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
	}
	return fn, nil
}

// Falloff maps a pattern position t in [0, 1] to a recoil multiplier that
// eases from Start to End.
type Falloff struct {
	Curve ease.TweenFunc
	Start float64
	End   float64
}

// DefaultFalloff eases from full strength to 30% over the pattern.
func DefaultFalloff() Falloff {
	return Falloff{Curve: Smoothstep, Start: 1.0, End: 0.3}
}

// Evaluate returns the multiplier at t. t is clamped to [0, 1].
func (f Falloff) Evaluate(t float64) float64 {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	curve := f.Curve
	if curve == nil {
		curve = Smoothstep
	}
	return float64(curve(float32(t), float32(f.Start), float32(f.End-f.Start), 1))
}

// ShotRatio is the falloff position of a shot: index over pattern length.
// The last shot of a cycle therefore never reaches t = 1.
func ShotRatio(index, length int) float64 {
	if length <= 0 {
		return 0
	}
	return float64(index) / float64(length)
}
