package spring

import (
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"
)

// Integrator advances a spring state by dt seconds.
type Integrator interface {
	Advance(p Params, s State, dt float64) State
}

// Integrator names accepted by NewIntegrator.
const (
	IntegratorEuler    = "euler"
	IntegratorAnalytic = "analytic"
)

// NewIntegrator returns the integrator registered under name.
func NewIntegrator(name string) (Integrator, error) {
	switch name {
	case "", IntegratorEuler:
		return Euler{}, nil
	case IntegratorAnalytic:
		return &Analytic{}, nil
	default:
		return nil, fmt.Errorf("unknown integrator %q", name)
	}
}

// MaxEulerStep is the longest single Step Euler takes, in seconds.
const MaxEulerStep = 1.0 / 120.0

// Euler integrates with Step. Frame deltas longer than the stable step size
// are split into equal substeps, so slow frame rates and stalls converge
// instead of blowing up.
type Euler struct{}

// Advance implements Integrator.
func (Euler) Advance(p Params, s State, dt float64) State {
	if dt <= 0 {
		return s
	}
	n := int(math.Ceil(dt / eulerStep(p)))
	h := dt / float64(n)
	for i := 0; i < n; i++ {
		s = Step(p, s, h)
	}
	return s
}

// eulerStep bounds the substep so that h(ω + c/m) ≤ 1, inside the stability
// region of semi-implicit Euler for any stiffness and damping.
func eulerStep(p Params) float64 {
	return math.Min(MaxEulerStep, 1/(p.AngularFrequency()+p.Damping/p.Mass))
}

// Analytic solves the damped oscillator in closed form using harmonica. It
// stays stable at large dt where Euler would overshoot.
type Analytic struct {
	spring harmonica.Spring
	dt     float64
	params Params
	ready  bool
}

// Advance implements Integrator. The harmonica coefficients depend on dt and
// the parameters, so they are rebuilt only when either changes.
func (a *Analytic) Advance(p Params, s State, dt float64) State {
	if !a.ready || dt != a.dt || p != a.params {
		a.spring = harmonica.NewSpring(dt, p.AngularFrequency(), p.DampingRatio())
		a.dt = dt
		a.params = p
		a.ready = true
	}
	s.Current, s.Velocity = a.spring.Update(s.Current, s.Velocity, s.Target)
	return s
}
