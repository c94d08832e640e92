package spring

// Animator drives a single scalar toward a target. It is idle until the
// target moves away from the resting value and idles again once settled;
// callers use Running to decide whether to request another frame.
type Animator struct {
	params     Params
	integrator Integrator
	state      State
	running    bool
}

// NewAnimator returns an animator at rest at zero.
func NewAnimator(p Params, integrator Integrator) *Animator {
	if integrator == nil {
		integrator = Euler{}
	}
	return &Animator{params: p, integrator: integrator}
}

// SetTarget re-aims the spring. Current value and velocity are untouched so
// in-flight motion carries its momentum into the new trajectory. It reports
// whether the animator went from idle to running.
func (a *Animator) SetTarget(target float64) bool {
	a.state.Target = target
	if a.running || Settled(a.params, a.state) {
		return false
	}
	a.running = true
	return true
}

// Tick advances the simulation by dt seconds and reports whether it settled.
// Ticking an idle animator does nothing.
func (a *Animator) Tick(dt float64) bool {
	if !a.running {
		return true
	}
	if dt > 0 {
		a.state = a.integrator.Advance(a.params, a.state, dt)
	}
	if Settled(a.params, a.state) {
		a.running = false
		return true
	}
	return false
}

// Running reports whether the animator wants more ticks.
func (a *Animator) Running() bool { return a.running }

// Current returns the animated value.
func (a *Animator) Current() float64 { return a.state.Current }

// Velocity returns the current rate of change.
func (a *Animator) Velocity() float64 { return a.state.Velocity }

// Target returns the value being approached.
func (a *Animator) Target() float64 { return a.state.Target }

// State returns a copy of the full simulation state.
func (a *Animator) State() State { return a.state }
