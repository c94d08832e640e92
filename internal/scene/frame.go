package scene

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/statelayer/internal/pointer"
)

// Cell is one painted terminal cell.
type Cell struct {
	Content string
	FG      lipgloss.Color
	BG      lipgloss.Color
	Bold    bool
}

type cellStyle struct {
	fg, bg lipgloss.Color
	bold   bool
}

// Frame is a fully painted scene.
type Frame struct {
	cols, rows int
	cells      []Cell
}

// Paint composes a frame from the static layout, the pointer position and
// the current highlight diameter. It has no side effects. Cells whose
// centres lie inside the circle take the highlight colour; text is drawn on
// top over whichever background lies beneath it.
func Paint(layout *Layout, at pointer.Sample, diameter float64) Frame {
	vp := layout.Viewport
	if vp.Empty() {
		return Frame{}
	}

	f := Frame{cols: vp.Cols, rows: vp.Rows, cells: make([]Cell, vp.Cols*vp.Rows)}
	radius := diameter / 2

	for row := 0; row < vp.Rows; row++ {
		for col := 0; col < vp.Cols; col++ {
			bg := layout.Background
			if radius > 0 {
				x, y := vp.PointAt(col, row)
				if math.Hypot(x-at.X, y-at.Y) <= radius {
					bg = layout.Highlight
				}
			}

			cell := Cell{Content: " ", BG: bg}
			if g, ok := layout.glyphs[cellKey{col, row}]; ok {
				cell.Content = g.content
				cell.FG = g.fg
				cell.Bold = g.bold
			}
			f.cells[row*vp.Cols+col] = cell
		}
	}

	return f
}

// Size returns the frame dimensions in cells.
func (f Frame) Size() (cols, rows int) {
	return f.cols, f.rows
}

// At returns the cell at (col, row). Out-of-range positions return a zero Cell.
func (f Frame) At(col, row int) Cell {
	if col < 0 || row < 0 || col >= f.cols || row >= f.rows {
		return Cell{}
	}
	return f.cells[row*f.cols+col]
}

// String renders the frame as styled terminal output, one line per row.
// Adjacent cells with the same style are rendered as a single run.
func (f Frame) String() string {
	if f.cols == 0 || f.rows == 0 {
		return ""
	}

	styles := make(map[cellStyle]lipgloss.Style)
	render := func(key cellStyle, text string) string {
		style, ok := styles[key]
		if !ok {
			style = lipgloss.NewStyle().Background(key.bg).Bold(key.bold)
			if key.fg != "" {
				style = style.Foreground(key.fg)
			}
			styles[key] = style
		}
		return style.Render(text)
	}

	lines := make([]string, f.rows)
	var run strings.Builder
	for row := 0; row < f.rows; row++ {
		var line strings.Builder
		run.Reset()
		var current cellStyle
		for col := 0; col < f.cols; col++ {
			cell := f.cells[row*f.cols+col]
			key := cellStyle{fg: cell.FG, bg: cell.BG, bold: cell.Bold}
			if col > 0 && key != current {
				line.WriteString(render(current, run.String()))
				run.Reset()
			}
			current = key
			run.WriteString(cell.Content)
		}
		line.WriteString(render(current, run.String()))
		lines[row] = line.String()
	}

	return strings.Join(lines, "\n")
}
