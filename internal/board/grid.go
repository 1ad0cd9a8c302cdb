package board

import (
	"trigrid/internal/geom"
	"trigrid/internal/palette"
)

// Grid owns the dense tile array and the transient interaction state
// of a drag gesture. Tiles are stored row-major and exclusively owned;
// the palette is shared read-only with every tile.
type Grid struct {
	layout geom.Layout
	cols   int
	rows   int
	tiles  []Tile
	pal    *palette.Palette

	last        *Tile
	interacting bool
}

// NewGrid allocates and populates a cols x rows grid.
func NewGrid(layout geom.Layout, cols, rows int, pal *palette.Palette) *Grid {
	g := &Grid{layout: layout, pal: pal}
	g.Populate(cols, rows)
	return g
}

// Populate rebuilds the tile array for the given dimensions, dropping
// all previous tile state. Called at construction and on resize.
func (g *Grid) Populate(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	g.cols, g.rows = cols, rows
	g.tiles = make([]Tile, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			t := &g.tiles[row*cols+col]
			t.Col, t.Row = col, row
			t.verts = g.layout.Vertices(col, row)
			t.pal = g.pal
		}
	}
	g.last = nil
	g.interacting = false
}

// Size returns the grid dimensions in tiles.
func (g *Grid) Size() (int, int) { return g.cols, g.rows }

// Layout returns the tessellation measurements the grid was built with.
func (g *Grid) Layout() geom.Layout { return g.layout }

// Palette returns the shared palette.
func (g *Grid) Palette() *palette.Palette { return g.pal }

// PixelSize returns the canvas extent the grid covers.
func (g *Grid) PixelSize() (float64, float64) {
	return g.layout.PixelSize(g.cols, g.rows)
}

// TileAt returns the tile at (col, row), or nil when out of bounds.
func (g *Grid) TileAt(col, row int) *Tile {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return nil
	}
	return &g.tiles[row*g.cols+col]
}

// HitTest resolves the tile whose triangle contains the pixel point,
// or nil when the point lies outside the grid.
func (g *Grid) HitTest(x, y float64) *Tile {
	col, row, ok := g.layout.HitTest(x, y, g.cols, g.rows)
	if !ok {
		return nil
	}
	return &g.tiles[row*g.cols+col]
}

// Press starts a gesture at the pixel point. When a tile is hit its
// state advances, the tile becomes the last-touched, and the gesture
// is marked active. The return value tells the input router whether
// the grid consumed the event.
func (g *Grid) Press(x, y float64) bool {
	t := g.HitTest(x, y)
	if t == nil {
		return false
	}
	t.Advance()
	g.last = t
	g.interacting = true
	return true
}

// Drag continues an active gesture. Revisits of the last-touched tile
// are no-ops, so a pointer lingering over one tile advances it at most
// once per entry rather than once per motion event.
func (g *Grid) Drag(x, y float64) {
	if !g.interacting {
		return
	}
	t := g.HitTest(x, y)
	if t == nil || t == g.last {
		return
	}
	t.Advance()
	g.last = t
}

// Release ends the gesture and clears the duplicate-suppression state.
// Safe to call without a preceding Press.
func (g *Grid) Release() {
	g.last = nil
	g.interacting = false
}

// Interacting reports whether a grid gesture is in progress.
func (g *Grid) Interacting() bool { return g.interacting }

// Clear resets every tile to the empty state.
func (g *Grid) Clear() {
	for i := range g.tiles {
		g.tiles[i].state = 0
	}
}

// Dirty calls fn for every tile with non-zero state, in row-major
// order. This is the renderer's work list: empty tiles are already
// represented by the background plus grid lines.
func (g *Grid) Dirty(fn func(*Tile)) {
	for i := range g.tiles {
		if g.tiles[i].state != 0 {
			fn(&g.tiles[i])
		}
	}
}

// LoadBrightness paints the grid from one brightness sample per tile,
// row-major, already downsampled to the grid resolution. Samples are
// normalized against the set's own min/max; a flat sample set divides
// by 1 instead, mapping everything to state 0. mirror flips column
// order (webcam frames arrive mirrored), invert flips the brightness
// direction. States are floor(norm*K) clamped to K-1.
func (g *Grid) LoadBrightness(samples []float64, mirror, invert bool) {
	if len(samples) != g.cols*g.rows {
		return
	}

	min, max := samples[0], samples[0]
	for _, s := range samples[1:] {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	span := max - min
	if span == 0 {
		span = 1
	}

	k := float64(g.pal.Size())
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			src := col
			if mirror {
				src = g.cols - 1 - col
			}
			norm := (samples[row*g.cols+src] - min) / span
			if invert {
				norm = 1 - norm
			}
			g.tiles[row*g.cols+col].setState(quantize(norm, k))
		}
	}
}

// quantEps absorbs float64 rounding in the normalization division:
// a sample sitting exactly on a bucket boundary in real arithmetic can
// land a few ulps below the integer and must not truncate into the
// bucket beneath it.
const quantEps = 1e-9

// quantize maps a normalized brightness in [0,1] to a state bucket,
// floor(norm*k) clamped to k-1.
func quantize(norm, k float64) int {
	return int(norm*k + quantEps)
}
