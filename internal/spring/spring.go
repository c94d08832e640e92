// Package spring animates scalars with a damped mass-spring simulation.
package spring

import (
	"errors"
	"math"
)

// Default parameters give a critically damped spring (ζ = 1, ω = 10 rad/s).
const (
	DefaultStiffness = 100.0
	DefaultDamping   = 20.0
	DefaultMass      = 1.0
	DefaultEpsilon   = 0.01
)

// Params configures the physical simulation.
type Params struct {
	Stiffness float64
	Damping   float64
	Mass      float64
	// Epsilon is the settle tolerance for both distance to target and speed.
	Epsilon float64
}

// DefaultParams returns the stock spring parameters.
func DefaultParams() Params {
	return Params{
		Stiffness: DefaultStiffness,
		Damping:   DefaultDamping,
		Mass:      DefaultMass,
		Epsilon:   DefaultEpsilon,
	}
}

// Validate reports parameters that cannot drive a simulation.
func (p Params) Validate() error {
	switch {
	case p.Stiffness <= 0:
		return errors.New("stiffness must be greater than 0")
	case p.Damping < 0:
		return errors.New("damping must not be negative")
	case p.Mass <= 0:
		return errors.New("mass must be greater than 0")
	case p.Epsilon <= 0:
		return errors.New("epsilon must be greater than 0")
	}
	return nil
}

// AngularFrequency is ω = √(k/m).
func (p Params) AngularFrequency() float64 {
	return math.Sqrt(p.Stiffness / p.Mass)
}

// DampingRatio is ζ = c / (2√(km)).
func (p Params) DampingRatio() float64 {
	return p.Damping / (2 * math.Sqrt(p.Stiffness*p.Mass))
}

// State is one animated scalar.
type State struct {
	Current  float64
	Velocity float64
	Target   float64
}

// Step advances s by dt seconds with semi-implicit Euler integration.
func Step(p Params, s State, dt float64) State {
	acceleration := (p.Stiffness*(s.Target-s.Current) - p.Damping*s.Velocity) / p.Mass
	s.Velocity += acceleration * dt
	s.Current += s.Velocity * dt
	return s
}

// Settled reports whether s is within tolerance of rest at its target.
func Settled(p Params, s State) bool {
	return math.Abs(s.Target-s.Current) < p.Epsilon && math.Abs(s.Velocity) < p.Epsilon
}
