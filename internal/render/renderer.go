package render

import (
	"trigrid/internal/board"
	"trigrid/internal/geom"
	"trigrid/internal/palette"
)

// lineWidth is the stroke width of the tessellation skeleton.
const lineWidth = 1

// Renderer draws a grid onto a Canvas: background, then the full line
// skeleton, then only the colored tiles. There is no partial-redraw
// path; a shared edge has no single owning tile, so redrawing one tile
// in place cannot be made reliable. The full pass costs the skeleton
// plus one fill per non-empty tile.
type Renderer struct {
	grid *board.Grid
}

// New constructs a Renderer bound to the grid.
func New(grid *board.Grid) *Renderer {
	return &Renderer{grid: grid}
}

// Redraw repaints the whole scene. Called after every state-changing
// operation: press, drag entry, clear, image load, palette change.
func (r *Renderer) Redraw(dst Canvas) {
	dst.Fill(palette.Background)
	r.gridLines(dst)
	r.dirtyTiles(dst)
}

// gridLines reconstructs the triangulation skeleton with three line
// sweeps across the perimeter: the column boundaries and the two ±60°
// diagonal families. Drawing per-tile edges instead would stroke every
// internal edge twice.
func (r *Renderer) gridLines(dst Canvas) {
	l := r.grid.Layout()
	cols, rows := r.grid.Size()
	pw, ph := l.PixelSize(cols, rows)

	for c := 0; c <= cols; c++ {
		x := float64(c) * l.Width
		dst.Line(geom.Point{X: x, Y: 0}, geom.Point{X: x, Y: ph}, lineWidth, palette.GridLine)
	}

	// Descending family: y = x/tan60 + k*Side. The line enters the
	// canvas while its left end is above the bottom and its right end
	// below the top.
	rise := float64(cols) * l.Half
	for k := -(cols / 2); k <= rows/2; k++ {
		y0 := float64(k) * l.Side
		dst.Line(geom.Point{X: 0, Y: y0}, geom.Point{X: pw, Y: y0 + rise}, lineWidth, palette.GridLine)
	}

	// Ascending family: y = -x/tan60 + k*Side.
	for k := 0; k <= rows/2+(cols+1)/2; k++ {
		y0 := float64(k) * l.Side
		dst.Line(geom.Point{X: 0, Y: y0}, geom.Point{X: pw, Y: y0 - rise}, lineWidth, palette.GridLine)
	}
}

// dirtyTiles paints every tile with non-zero state: the fill, then the
// tile's own stroke over the gray skeleton edges. State-0 tiles are
// already represented by the background and skeleton.
func (r *Renderer) dirtyTiles(dst Canvas) {
	r.grid.Dirty(func(t *board.Tile) {
		vs := t.Vertices()
		dst.Triangle(vs, t.FillColor())
		stroke := t.StrokeColor()
		dst.Line(vs[0], vs[1], lineWidth, stroke)
		dst.Line(vs[1], vs[2], lineWidth, stroke)
		dst.Line(vs[2], vs[0], lineWidth, stroke)
	})
}
