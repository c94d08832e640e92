// Package highlight couples the pointer tracker to the spring animator: the
// activation flag picks the spring target and the viewport size fixes how
// far the highlight grows.
package highlight

import (
	"github.com/alexisbeaulieu97/statelayer/internal/logger"
	"github.com/alexisbeaulieu97/statelayer/internal/pointer"
	"github.com/alexisbeaulieu97/statelayer/internal/spring"
)

// Controller owns the tracker and the diameter animation.
type Controller struct {
	tracker     *pointer.Tracker
	animator    *spring.Animator
	maxDiameter float64
	log         *logger.Logger
}

// New returns an idle controller with a zero diameter. Call Resize before
// the first activation so the target is known.
func New(params spring.Params, integrator spring.Integrator, log *logger.Logger) *Controller {
	c := &Controller{
		tracker:  pointer.NewTracker(),
		animator: spring.NewAnimator(params, integrator),
		log:      log.Component("highlight"),
	}
	c.tracker.OnActivate(c.activationChanged)
	return c
}

// Tracker exposes the pointer tracker that input events are routed to.
func (c *Controller) Tracker() *pointer.Tracker {
	return c.tracker
}

// Resize records a new full-cover diameter. An active highlight re-aims at
// it without losing momentum.
func (c *Controller) Resize(maxDiameter float64) {
	if maxDiameter == c.maxDiameter {
		return
	}
	c.maxDiameter = maxDiameter
	c.log.Debug("max diameter changed", map[string]any{"max_diameter": maxDiameter})
	if c.tracker.Active() {
		c.animator.SetTarget(maxDiameter)
	}
}

// MaxDiameter returns the current full-cover diameter.
func (c *Controller) MaxDiameter() float64 {
	return c.maxDiameter
}

// Target returns the diameter the spring is heading for.
func (c *Controller) Target() float64 {
	return c.animator.Target()
}

// Diameter returns the animated diameter used for both width and height.
func (c *Controller) Diameter() float64 {
	return c.animator.Current()
}

// Animating reports whether the spring still needs frames.
func (c *Controller) Animating() bool {
	return c.animator.Running()
}

// Tick advances the animation by dt seconds and reports whether it settled.
func (c *Controller) Tick(dt float64) bool {
	wasRunning := c.animator.Running()
	settled := c.animator.Tick(dt)
	if wasRunning && settled {
		c.log.Debug("highlight settled", map[string]any{"diameter": c.animator.Current()})
	}
	return settled
}

// Spring returns a snapshot of the diameter simulation.
func (c *Controller) Spring() spring.State {
	return c.animator.State()
}

func (c *Controller) activationChanged(active bool) {
	target := 0.0
	if active {
		target = c.maxDiameter
	}
	sample := c.tracker.Sample()
	c.log.Debug("activation changed", map[string]any{
		"active": active,
		"x":      sample.X,
		"y":      sample.Y,
		"target": target,
	})
	c.animator.SetTarget(target)
}
