// Package scene lays out and paints the demo. Layout is rebuilt on resize;
// Paint runs every frame against it.
package scene

import "math"

// Default logical cell size in px. Terminal cells are roughly twice as tall
// as they are wide, so px coordinates keep the highlight circular.
const (
	DefaultCellWidth  = 8.0
	DefaultCellHeight = 16.0
)

// Viewport is the terminal window measured in cells, with a px scale per cell.
type Viewport struct {
	Cols       int
	Rows       int
	CellWidth  float64
	CellHeight float64
}

// NewViewport returns a viewport using the default cell size.
func NewViewport(cols, rows int) Viewport {
	return Viewport{Cols: cols, Rows: rows, CellWidth: DefaultCellWidth, CellHeight: DefaultCellHeight}
}

// Width is the viewport width in px.
func (v Viewport) Width() float64 {
	return float64(v.Cols) * v.CellWidth
}

// Height is the viewport height in px.
func (v Viewport) Height() float64 {
	return float64(v.Rows) * v.CellHeight
}

// Empty reports whether the viewport has no drawable area.
func (v Viewport) Empty() bool {
	return v.Cols <= 0 || v.Rows <= 0
}

// MaxDiameter is the smallest circle diameter that covers the whole viewport
// from any centre inside it, including a corner.
func (v Viewport) MaxDiameter() float64 {
	return MaxDiameter(v.Width(), v.Height())
}

// MaxDiameter returns 2 × hypot(width, height).
func MaxDiameter(width, height float64) float64 {
	return 2 * math.Hypot(width, height)
}

// PointAt converts a cell position to the px coordinate of the cell centre.
func (v Viewport) PointAt(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * v.CellWidth, (float64(row) + 0.5) * v.CellHeight
}

// Contains reports whether a cell position lies inside the viewport.
func (v Viewport) Contains(col, row int) bool {
	return col >= 0 && row >= 0 && col < v.Cols && row < v.Rows
}

// ColsFor converts a px length to a whole number of columns.
func (v Viewport) ColsFor(px float64) int {
	return int(math.Round(px / v.CellWidth))
}

// RowsFor converts a px length to a whole number of rows.
func (v Viewport) RowsFor(px float64) int {
	return int(math.Round(px / v.CellHeight))
}
