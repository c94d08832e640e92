package scene

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/statelayer/internal/theme"
)

// heroMaxWidth caps the text block width in px.
const heroMaxWidth = 600.0

// Hero is the static copy shown above the highlight.
type Hero struct {
	Title string
	Body  string
}

// DefaultHero returns the demo copy.
func DefaultHero() Hero {
	return Hero{
		Title: "State Layer",
		Body: "Move your cursor across the screen. This demonstrates the \"State Layer\" principle " +
			"from Tier 2 of the design system. The interaction feels fluid and directly responsive to user input.",
	}
}

// Target identifies the layer that receives a pointer event.
type Target string

const (
	TargetNone    Target = ""
	TargetTracker Target = "tracker"
	TargetHero    Target = "hero"
)

// Rect is a cell rectangle.
type Rect struct {
	Col, Row      int
	Width, Height int
}

// Contains reports whether the cell lies inside r.
func (r Rect) Contains(col, row int) bool {
	return col >= r.Col && row >= r.Row && col < r.Col+r.Width && row < r.Row+r.Height
}

// Layer is one stacked surface of the scene, listed bottom to top.
type Layer struct {
	Target      Target
	Bounds      Rect
	Interactive bool
	// HideCursor mirrors the container's cursor: none.
	HideCursor bool
}

type glyph struct {
	content string
	fg      lipgloss.Color
	bold    bool
}

type cellKey struct{ col, row int }

// Layout is the structural part of a scene: everything that only changes on
// mount, resize or a theme swap. Pointer movement never rebuilds it.
type Layout struct {
	Viewport   Viewport
	Background lipgloss.Color
	Highlight  lipgloss.Color
	Layers     []Layer

	glyphs map[cellKey]glyph
}

// NewLayout measures and places the hero block for the given viewport.
func NewLayout(vp Viewport, tokens theme.Tokens, hero Hero) *Layout {
	l := &Layout{
		Viewport:   vp,
		Background: tokens.Color(theme.SurfacePrimary),
		Highlight:  tokens.Color(theme.SurfaceSecondary),
		glyphs:     make(map[cellKey]glyph),
	}
	l.Layers = []Layer{{
		Target:      TargetTracker,
		Bounds:      Rect{Width: vp.Cols, Height: vp.Rows},
		Interactive: true,
		HideCursor:  true,
	}}
	if vp.Empty() {
		return l
	}

	padding := float64(tokens.Space(theme.SpaceM))
	width := math.Min(heroMaxWidth, vp.Width()-2*padding)
	cols := vp.ColsFor(width)
	if cols < 1 {
		cols = 1
	}

	titleFont, _ := tokens.Font(theme.FamilyDisplay, theme.SizeL)
	bodyFont, _ := tokens.Font(theme.FamilyBody, theme.SizeL)

	type styledLine struct {
		text string
		fg   lipgloss.Color
		bold bool
	}

	styleFor := func(font theme.Font, slot theme.ColorSlot) styledLine {
		style := tokens.TextStyle(font, slot)
		fg, _ := style.GetForeground().(lipgloss.Color)
		return styledLine{fg: fg, bold: style.GetBold()}
	}
	titleStyle := styleFor(titleFont, theme.ContentPrimary)
	bodyStyle := styleFor(bodyFont, theme.ContentSecondary)

	var lines []styledLine
	for _, line := range wrap(titleFont.Transform(hero.Title), cols) {
		titleStyle.text = line
		lines = append(lines, titleStyle)
	}
	bodyLines := wrap(bodyFont.Transform(hero.Body), cols)
	if len(lines) > 0 && len(bodyLines) > 0 {
		gap := vp.RowsFor(float64(tokens.Space(theme.SpaceS)))
		for i := 0; i < gap; i++ {
			lines = append(lines, styledLine{})
		}
	}
	for _, line := range bodyLines {
		bodyStyle.text = line
		lines = append(lines, bodyStyle)
	}
	if len(lines) == 0 {
		return l
	}

	top := (vp.Rows - len(lines)) / 2
	block := Rect{Col: vp.Cols, Row: top, Height: len(lines)}
	for i, line := range lines {
		row := top + i
		lineWidth := ansi.StringWidth(line.text)
		col := (vp.Cols - lineWidth) / 2
		if lineWidth > 0 {
			block.Col = min(block.Col, col)
			block.Width = max(block.Width, col+lineWidth)
		}
		l.place(row, col, line.text, line.fg, line.bold)
	}
	if block.Width > 0 {
		block.Width -= block.Col
		l.Layers = append(l.Layers, Layer{Target: TargetHero, Bounds: block})
	}

	return l
}

func wrap(text string, cols int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	lines := strings.Split(ansi.Wrap(text, cols, ""), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}

// place writes text into the glyph map starting at (col, row), clipping
// anything outside the viewport.
func (l *Layout) place(row, col int, text string, fg lipgloss.Color, bold bool) {
	for _, r := range text {
		s := string(r)
		w := ansi.StringWidth(s)
		if w == 0 {
			continue
		}
		if l.Viewport.Contains(col, row) && l.Viewport.Contains(col+w-1, row) {
			l.glyphs[cellKey{col, row}] = glyph{content: s, fg: fg, bold: bold}
			for i := 1; i < w; i++ {
				l.glyphs[cellKey{col + i, row}] = glyph{fg: fg, bold: bold}
			}
		}
		col += w
	}
}

// HitTest returns the topmost interactive layer under the cell. The hero
// block is decorative and never intercepts events, so any point inside the
// viewport resolves to the tracking container.
func (l *Layout) HitTest(col, row int) Target {
	for i := len(l.Layers) - 1; i >= 0; i-- {
		layer := l.Layers[i]
		if !layer.Interactive {
			continue
		}
		if layer.Bounds.Contains(col, row) {
			return layer.Target
		}
	}
	return TargetNone
}

// Text returns the plain text laid out on row.
func (l *Layout) Text(row int) string {
	var b strings.Builder
	for col := 0; col < l.Viewport.Cols; col++ {
		if g, ok := l.glyphs[cellKey{col, row}]; ok {
			b.WriteString(g.content)
			continue
		}
		b.WriteByte(' ')
	}
	return strings.TrimRight(b.String(), " ")
}

// Layer returns the layer registered for target.
func (l *Layout) Layer(target Target) (Layer, bool) {
	for _, layer := range l.Layers {
		if layer.Target == target {
			return layer, true
		}
	}
	return Layer{}, false
}
