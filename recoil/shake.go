package recoil

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"gonum.org/v1/gonum/spatial/r3"
)

// Shake is a short positional jitter whose strength decays linearly to zero.
// Starting a new shake replaces the one in flight.
type Shake struct {
	tween  *gween.Tween
	offset r3.Vec
	scale  float64
}

// Start restarts the jitter at full intensity for duration seconds.
func (s *Shake) Start(intensity, duration, scale float64) {
	s.tween = gween.New(float32(intensity), 0, float32(duration), ease.Linear)
	s.scale = scale
}

// Tick samples a new jitter offset for this frame.
func (s *Shake) Tick(dt float64, rng Random) {
	if s.tween == nil {
		return
	}
	intensity, done := s.tween.Update(float32(dt))
	if done {
		s.Stop()
		return
	}
	s.offset = r3.Scale(float64(intensity)*s.scale, rng.InsideUnitSphere())
}

// Stop cancels the jitter and returns the offset to rest.
func (s *Shake) Stop() {
	s.tween = nil
	s.offset = r3.Vec{}
}

// Active reports whether a jitter is playing.
func (s *Shake) Active() bool {
	return s.tween != nil
}

// Offset is the current jitter displacement.
func (s *Shake) Offset() r3.Vec {
	return s.offset
}
