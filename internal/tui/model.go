package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/statelayer/internal/config"
	"github.com/alexisbeaulieu97/statelayer/internal/highlight"
	"github.com/alexisbeaulieu97/statelayer/internal/logger"
	"github.com/alexisbeaulieu97/statelayer/internal/scene"
	"github.com/alexisbeaulieu97/statelayer/internal/spring"
	"github.com/alexisbeaulieu97/statelayer/internal/theme"
)

// frameMsg is one animation frame.
type frameMsg struct {
	at time.Time
}

// Model is the Bubbletea state for the state layer demo.
type Model struct {
	tokens    theme.Tokens
	hero      scene.Hero
	inputMode string

	cellWidth  float64
	cellHeight float64
	viewport   scene.Viewport
	layout     *scene.Layout
	layouts    int

	highlight *highlight.Controller
	paint     *paintCache

	frameInterval time.Duration
	lastFrame     time.Time
	ticking       bool

	keys     keyMap
	log      *logger.Logger
	quitting bool
}

// NewModel builds a model from a validated configuration.
func NewModel(cfg config.Config, log *logger.Logger) (Model, error) {
	integrator, err := spring.NewIntegrator(cfg.Spring.Integrator)
	if err != nil {
		return Model{}, err
	}
	params := cfg.SpringParams()
	if err := params.Validate(); err != nil {
		return Model{}, err
	}

	hl := highlight.New(params, integrator, log)
	cache := &paintCache{dirty: true}
	hl.Tracker().X().OnChange(cache.invalidate)
	hl.Tracker().Y().OnChange(cache.invalidate)

	return Model{
		tokens:        theme.Resolve(cfg.Mode()),
		hero:          cfg.HeroCopy(),
		inputMode:     cfg.Input,
		cellWidth:     cfg.Cell.Width,
		cellHeight:    cfg.Cell.Height,
		highlight:     hl,
		paint:         cache,
		frameInterval: cfg.FrameInterval(),
		keys:          defaultKeyMap(),
		log:           log.Component("tui"),
	}, nil
}

// Init hides the terminal cursor; the highlight replaces it.
func (m Model) Init() tea.Cmd {
	return tea.HideCursor
}

// Highlight exposes the highlight controller.
func (m Model) Highlight() *highlight.Controller {
	return m.highlight
}

// Viewport returns the current viewport.
func (m Model) Viewport() scene.Viewport {
	return m.viewport
}

// Layouts counts structural layout rebuilds. Pointer movement never
// increments it.
func (m Model) Layouts() int {
	return m.layouts
}

// Paints counts how many times View repainted the scene.
func (m Model) Paints() int {
	return m.paint.paints
}

// Ticking reports whether an animation frame is scheduled.
func (m Model) Ticking() bool {
	return m.ticking
}

// Quitting reports whether the user asked to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m *Model) resize(cols, rows int) {
	m.viewport = scene.Viewport{
		Cols:       cols,
		Rows:       rows,
		CellWidth:  m.cellWidth,
		CellHeight: m.cellHeight,
	}
	m.layout = scene.NewLayout(m.viewport, m.tokens, m.hero)
	m.layouts++
	m.paint.invalidate(0)
	m.highlight.Resize(m.viewport.MaxDiameter())
	m.log.Debug("viewport resized", map[string]any{"cols": cols, "rows": rows})
}

// requestFrame schedules the next frame when the spring needs one and none
// is pending.
func (m *Model) requestFrame() tea.Cmd {
	if m.ticking || !m.highlight.Animating() {
		return nil
	}
	m.ticking = true
	return frameCmd(m.frameInterval)
}

func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(at time.Time) tea.Msg { return frameMsg{at: at} })
}
