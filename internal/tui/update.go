package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/statelayer/internal/config"
	"github.com/alexisbeaulieu97/statelayer/internal/pointer"
	"github.com/alexisbeaulieu97/statelayer/internal/scene"
)

// maxFrameGap bounds the dt fed to the spring, in frames, so a stalled
// terminal does not make the integrator jump.
const maxFrameGap = 4

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, m.requestFrame()
	case tea.MouseMsg:
		m.handleMouse(tea.MouseEvent(msg))
		return m, m.requestFrame()
	case tea.BlurMsg:
		m.highlight.Tracker().Leave()
		return m, m.requestFrame()
	case frameMsg:
		return m.handleFrame(msg)
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *Model) handleMouse(ev tea.MouseEvent) {
	if m.layout == nil {
		return
	}

	tracker := m.highlight.Tracker()
	inside := m.layout.HitTest(ev.X, ev.Y) == scene.TargetTracker
	x, y := m.viewport.PointAt(ev.X, ev.Y)

	if m.inputMode == config.InputTouch {
		var points []pointer.TouchPoint
		if inside {
			points = []pointer.TouchPoint{{X: x, Y: y}}
		}
		switch {
		case ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft:
			tracker.TouchStart(points)
		case ev.Action == tea.MouseActionMotion && ev.Button == tea.MouseButtonLeft:
			tracker.TouchMove(points)
		case ev.Action == tea.MouseActionRelease:
			tracker.TouchEnd()
		}
		return
	}

	if !inside {
		tracker.Leave()
		return
	}
	if tracker.Active() {
		tracker.Move(x, y)
		return
	}
	tracker.Enter(x, y)
}

func (m Model) handleFrame(msg frameMsg) (tea.Model, tea.Cmd) {
	m.ticking = false

	dt := m.frameInterval
	if !m.lastFrame.IsZero() {
		dt = msg.at.Sub(m.lastFrame)
	}
	dt = min(max(dt, 0), maxFrameGap*m.frameInterval)
	m.lastFrame = msg.at

	if m.highlight.Tick(dt.Seconds()) {
		m.lastFrame = time.Time{}
		return m, nil
	}
	return m, m.requestFrame()
}
