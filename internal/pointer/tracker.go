// Package pointer tracks a single mouse or touch pointer over the demo
// container: its position in viewport pixels and whether it is inside.
package pointer

import (
	"github.com/alexisbeaulieu97/statelayer/internal/motion"
)

// Sample is the last known pointer position in viewport pixels.
type Sample struct {
	X float64
	Y float64
}

// TouchPoint is one active touch contact in viewport pixels.
type TouchPoint struct {
	X float64
	Y float64
}

// Tracker follows a single pointer device. Position lives in motion cells so
// that moves are observable without touching activation, which is the only
// state that warrants a structural update.
//
// The position is never reset: while inactive it keeps the last value so the
// next activation starts from where the pointer actually is.
type Tracker struct {
	x      *motion.Value
	y      *motion.Value
	active bool

	activationHandlers []func(bool)
}

// NewTracker returns an inactive tracker at the origin.
func NewTracker() *Tracker {
	return &Tracker{
		x: motion.NewValue(0),
		y: motion.NewValue(0),
	}
}

// X exposes the horizontal position cell.
func (t *Tracker) X() *motion.Value { return t.x }

// Y exposes the vertical position cell.
func (t *Tracker) Y() *motion.Value { return t.y }

// Sample returns the current position.
func (t *Tracker) Sample() Sample {
	return Sample{X: t.x.Get(), Y: t.y.Get()}
}

// Active reports whether a pointer is currently inside the container.
func (t *Tracker) Active() bool {
	return t.active
}

// OnActivate registers fn to run on every activation transition. Repeated
// enters or leaves do not fire it.
func (t *Tracker) OnActivate(fn func(active bool)) {
	t.activationHandlers = append(t.activationHandlers, fn)
}

// Enter records the entry position and then activates. The ordering keeps
// activation observers from ever seeing a stale position.
func (t *Tracker) Enter(x, y float64) {
	t.set(x, y)
	t.setActive(true)
}

// Move records a new position without affecting activation.
func (t *Tracker) Move(x, y float64) {
	t.set(x, y)
}

// Leave deactivates. The position is retained.
func (t *Tracker) Leave() {
	t.setActive(false)
}

// TouchStart behaves like Enter using the first touch point. An event with
// no touch points is ignored.
func (t *Tracker) TouchStart(points []TouchPoint) {
	if len(points) == 0 {
		return
	}
	t.Enter(points[0].X, points[0].Y)
}

// TouchMove behaves like Move using the first touch point. An event with no
// touch points is ignored.
func (t *Tracker) TouchMove(points []TouchPoint) {
	if len(points) == 0 {
		return
	}
	t.Move(points[0].X, points[0].Y)
}

// TouchEnd behaves like Leave.
func (t *Tracker) TouchEnd() {
	t.Leave()
}

func (t *Tracker) set(x, y float64) {
	t.x.Set(x)
	t.y.Set(y)
}

func (t *Tracker) setActive(active bool) {
	if t.active == active {
		return
	}
	t.active = active
	for _, fn := range t.activationHandlers {
		fn(active)
	}
}
