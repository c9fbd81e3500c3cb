package recoil

// State is the recoil timing state.
type State int

const (
	// Active means a shot landed recently and recovery has not started.
	Active State = iota
	// Recovering means offsets are decaying toward rest.
	Recovering
)

func (s State) String() string {
	if s == Recovering {
		return "recovering"
	}
	return "active"
}

// RecoveryTimer tracks when recovery starts after the last shot and when the
// pattern has been idle long enough to restart. Time only moves through
// Advance, so behaviour is fully determined by the dt values fed in.
type RecoveryTimer struct {
	Delay      float64 // seconds from a shot until recovery begins
	ResetAfter float64 // idle seconds after which the pattern restarts

	clock      float64
	lastFire   float64
	activateAt float64
	pending    bool
	recovering bool
}

// Fire records a shot at the current clock. Any pending recovery is
// cancelled and the delay starts over.
func (t *RecoveryTimer) Fire() {
	t.lastFire = t.clock
	t.recovering = false
	t.pending = true
	t.activateAt = t.clock + t.Delay
}

// Advance moves the clock forward by dt and activates recovery when the
// pending delay has elapsed.
func (t *RecoveryTimer) Advance(dt float64) {
	t.clock += dt
	if t.pending && t.clock >= t.activateAt {
		t.pending = false
		t.recovering = true
	}
}

// Cancel drops any pending activation and leaves the timer Active.
func (t *RecoveryTimer) Cancel() {
	t.pending = false
	t.recovering = false
}

// Quiescent reports whether more than ResetAfter seconds have passed since
// the last shot.
func (t *RecoveryTimer) Quiescent() bool {
	return t.clock-t.lastFire > t.ResetAfter
}

// State returns Active or Recovering.
func (t *RecoveryTimer) State() State {
	if t.recovering {
		return Recovering
	}
	return Active
}

// Clock returns the accumulated elapsed time in seconds.
func (t *RecoveryTimer) Clock() float64 {
	return t.clock
}

// SinceFire returns seconds elapsed since the last shot.
func (t *RecoveryTimer) SinceFire() float64 {
	return t.clock - t.lastFire
}
