package tui

import (
	"github.com/alexisbeaulieu97/statelayer/internal/scene"
)

// paintCache holds the last rendered frame. The pointer cells mark it dirty
// on change; the diameter is compared directly since it moves every tick.
type paintCache struct {
	dirty    bool
	diameter float64
	view     string
	paints   int
}

func (c *paintCache) invalidate(float64) {
	c.dirty = true
}

// View paints the cached layout with the live pointer position and the
// current highlight diameter. Unchanged frames are served from the cache.
func (m Model) View() string {
	if m.quitting || m.layout == nil {
		return ""
	}

	diameter := m.highlight.Diameter()
	if !m.paint.dirty && diameter == m.paint.diameter {
		return m.paint.view
	}

	m.paint.view = scene.Paint(m.layout, m.highlight.Tracker().Sample(), diameter).String()
	m.paint.diameter = diameter
	m.paint.dirty = false
	m.paint.paints++
	return m.paint.view
}
