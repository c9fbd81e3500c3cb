// Package recoil simulates weapon recoil: a spray pattern shaped by a falloff
// curve kicks a 2D view offset that recovers toward rest after a delay.
// The engine is driven entirely by Fire and Tick and owns no goroutines.
package recoil

import (
	"log/slog"

	"github.com/automoto/doomerang-recoil/config"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Shot describes the contribution a single Fire added to the target offset.
type Shot struct {
	Index int    // pattern index the shot used
	Delta r2.Vec // clamped contribution
}

// Engine is one weapon's recoil state. It is not safe for concurrent use;
// the host calls Fire and Tick from its frame loop.
type Engine struct {
	name     string
	settings config.RecoilSettings

	pattern        *Pattern
	falloff        Falloff
	baseMultiplier float64
	intensity      float64

	offset Accumulator
	index  int
	timer  RecoveryTimer
	shake  Shake

	base   Orientation
	camera *CameraRig
	model  *ModelRig
	view   Orientation

	rng    Random
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithRandom replaces the random source.
func WithRandom(r Random) Option {
	return func(e *Engine) { e.rng = r }
}

// WithLogger sets the logger used for configuration warnings.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine builds an engine from a weapon profile. The profile is copied, so
// one profile can back several engines. An empty pattern or unknown falloff
// curve is replaced by the built-in default and logged.
func NewEngine(w config.WeaponConfig, opts ...Option) *Engine {
	e := &Engine{
		name:           w.Name,
		settings:       w.Settings,
		baseMultiplier: w.Pattern.BaseMultiplier,
		intensity:      w.Pattern.Intensity,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = NewRandom()
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}

	pattern, err := NewPattern(w.Pattern.Steps)
	if err != nil {
		e.logger.Warn("recoil_pattern_fallback",
			"weapon", w.Name,
			"error", err,
			"steps", len(DefaultPattern),
		)
		pattern = MustPattern(DefaultPattern)
	}
	e.pattern = pattern

	curve, err := ParseCurve(w.Pattern.Falloff.Curve)
	if err != nil {
		e.logger.Warn("recoil_falloff_fallback",
			"weapon", w.Name,
			"error", err,
		)
		curve = Smoothstep
	}
	e.falloff = Falloff{Curve: curve, Start: w.Pattern.Falloff.Start, End: w.Pattern.Falloff.End}

	e.timer = RecoveryTimer{
		Delay:      e.settings.RecoveryDelay,
		ResetAfter: e.settings.PatternResetTime,
	}
	return e
}

// Name returns the weapon name the engine was built for.
func (e *Engine) Name() string {
	return e.name
}

// Fire applies one shot: the next pattern step, shaped by the falloff and the
// multipliers, randomised per call and clamped, is added to the target.
func (e *Engine) Fire() Shot {
	e.timer.Fire()

	index := e.index
	length := e.pattern.Len()
	delta := r2.Scale(
		e.falloff.Evaluate(ShotRatio(index, length))*e.baseMultiplier,
		e.pattern.Next(index),
	)

	k := e.settings.CameraMultiplier * e.intensity * shotMultiplier(e.rng.Float64())
	delta = r2.Scale(k, delta)

	// Vertical is only capped from above; horizontal is symmetric.
	maxRecoil := e.settings.MaxCameraRecoil
	delta.Y = min(delta.Y, maxRecoil)
	delta.X = max(-maxRecoil, min(delta.X, maxRecoil))

	e.offset.Add(delta)
	e.index = (index + 1) % length

	if sh := e.settings.ScreenShake; sh.Enabled {
		e.shake.Start(sh.Intensity, sh.Duration, sh.Scale)
	}
	return Shot{Index: index, Delta: delta}
}

// Tick advances the simulation by dt seconds.
func (e *Engine) Tick(dt float64) {
	e.timer.Advance(dt)

	e.offset.Tick(dt, e.timer.State() == Recovering,
		e.settings.KickSpeed, e.settings.CameraRecoverySpeed)

	e.view = ViewOffset(e.base, e.offset.Current)

	if e.model != nil {
		e.model.Tick(dt,
			Intensity(e.offset.Current, e.settings.MaxCameraRecoil),
			e.settings.GunMultiplier,
			e.settings.GunRecoverySpeed,
			Pose{Position: e.settings.GunRecoilPosition, Rotation: e.settings.GunRecoilRotation},
		)
	}

	e.shake.Tick(dt, e.rng)

	if e.timer.Quiescent() {
		e.index = 0
	}
}

// SetBaseOrientation feeds the player's look direction before Tick.
func (e *Engine) SetBaseOrientation(o Orientation) {
	e.base = o
	e.view = ViewOffset(e.base, e.offset.Current)
}

// Reset zeroes the offsets and pattern position and cancels pending
// recovery and jitter.
func (e *Engine) Reset() {
	e.offset.Reset()
	e.index = 0
	e.timer.Cancel()
	e.shake.Stop()
	e.view = e.base
}

// SetRecoilMultiplier replaces the camera recoil multiplier.
func (e *Engine) SetRecoilMultiplier(v float64) {
	e.settings.CameraMultiplier = v
}

// RecoilMultiplier returns the camera recoil multiplier.
func (e *Engine) RecoilMultiplier() float64 {
	return e.settings.CameraMultiplier
}

// SetScreenShake toggles the per-shot jitter.
func (e *Engine) SetScreenShake(enabled bool) {
	e.settings.ScreenShake.Enabled = enabled
	if !enabled {
		e.shake.Stop()
	}
}

// SetCustomPattern replaces the pattern table and restarts it. An empty
// pattern is rejected and the engine is left unchanged.
func (e *Engine) SetCustomPattern(steps []r2.Vec) error {
	p, err := NewPattern(steps)
	if err != nil {
		return err
	}
	e.pattern = p
	e.index = 0
	return nil
}

// Pattern returns the steps currently in use.
func (e *Engine) Pattern() []r2.Vec {
	return e.pattern.Steps()
}

// CaptureCamera records the camera's rest transform. Until it is called,
// View and CameraPosition report no camera.
func (e *Engine) CaptureCamera(rest CameraRig) {
	e.camera = &rest
}

// CaptureModel records the weapon model's rest pose. Until it is called,
// Model reports no model.
func (e *Engine) CaptureModel(rest Pose) {
	e.model = NewModelRig(rest)
}

// Offset returns the rendered recoil offset.
func (e *Engine) Offset() r2.Vec {
	return e.offset.Current
}

// Target returns the offset the rendered offset is chasing.
func (e *Engine) Target() r2.Vec {
	return e.offset.Target
}

// PatternIndex returns the index the next shot will use.
func (e *Engine) PatternIndex() int {
	return e.index
}

// State returns Active or Recovering.
func (e *Engine) State() State {
	return e.timer.State()
}

// Recovering reports whether the offsets are decaying toward rest.
func (e *Engine) Recovering() bool {
	return e.timer.State() == Recovering
}

// View returns base orientation plus recoil.
func (e *Engine) View() (Orientation, bool) {
	if e.camera == nil {
		return Orientation{}, false
	}
	return e.view, true
}

// CameraPosition returns the camera rest position plus the current jitter.
func (e *Engine) CameraPosition() (r3.Vec, bool) {
	if e.camera == nil {
		return r3.Vec{}, false
	}
	return r3.Add(e.camera.RestPosition, e.shake.Offset()), true
}

// ShakeOffset returns the current jitter displacement.
func (e *Engine) ShakeOffset() r3.Vec {
	return e.shake.Offset()
}

// Model returns the weapon model's current pose.
func (e *Engine) Model() (Pose, bool) {
	if e.model == nil {
		return Pose{}, false
	}
	return e.model.Current, true
}

// Settings returns the engine's copy of the recoil settings.
func (e *Engine) Settings() config.RecoilSettings {
	return e.settings
}
