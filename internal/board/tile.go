package board

import (
	"image/color"

	"trigrid/internal/geom"
	"trigrid/internal/palette"
)

// Tile is one triangular cell of the grid. Its address and vertex
// positions are fixed at construction; only the state mutates.
type Tile struct {
	Col int
	Row int

	state uint8
	verts [3]geom.Point
	pal   *palette.Palette
}

// State returns the tile's current palette index. 0 means empty.
func (t *Tile) State() uint8 { return t.state }

// Vertices returns the tile's cached corner points in pixel space.
func (t *Tile) Vertices() [3]geom.Point { return t.verts }

// Advance cycles the state forward by one, wrapping at the palette
// size. The arithmetic runs in int: a palette of the full 256 states
// would make a uint8 modulus zero. Triggering a redraw is the caller's
// concern.
func (t *Tile) Advance() {
	t.state = uint8((int(t.state) + 1) % t.pal.Size())
}

// Reset returns the tile to the empty state.
func (t *Tile) Reset() { t.state = 0 }

// FillColor resolves the tile's fill through the shared palette.
func (t *Tile) FillColor() color.RGBA {
	return t.pal.ColorFor(t.state)
}

// StrokeColor resolves the tile's outline color. Empty tiles stroke
// with the grid-line color so they stay visible on the background.
func (t *Tile) StrokeColor() color.RGBA {
	if t.state == 0 {
		return palette.GridLine
	}
	return t.pal.ColorFor(t.state)
}

func (t *Tile) setState(s int) {
	if s < 0 {
		s = 0
	}
	if k := t.pal.Size(); s >= k {
		s = k - 1
	}
	t.state = uint8(s)
}
