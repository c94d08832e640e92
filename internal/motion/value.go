// Package motion provides observable scalar cells for values that change at
// input-event rate. Writers call Set; readers either poll Get or subscribe
// with OnChange. Nothing here triggers a structural rebuild of the view.
//
// Cells are not safe for concurrent use. All access is expected on the UI
// goroutine.
package motion

// Value is a float64 cell that notifies subscribers when it changes.
type Value struct {
	current     float64
	subscribers map[int]func(float64)
	nextID      int
}

// NewValue returns a cell holding initial.
func NewValue(initial float64) *Value {
	return &Value{current: initial}
}

// Get returns the current value.
func (v *Value) Get() float64 {
	return v.current
}

// Set stores next and notifies subscribers. Setting the value it already
// holds is a no-op.
func (v *Value) Set(next float64) {
	if next == v.current {
		return
	}
	v.current = next
	for _, fn := range v.subscribers {
		fn(next)
	}
}

// OnChange registers fn to run after each change. The returned function
// removes the subscription and is safe to call more than once.
func (v *Value) OnChange(fn func(float64)) func() {
	if v.subscribers == nil {
		v.subscribers = make(map[int]func(float64))
	}
	id := v.nextID
	v.nextID++
	v.subscribers[id] = fn

	return func() {
		delete(v.subscribers, id)
	}
}
