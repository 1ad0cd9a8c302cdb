package geom

import "math"

// Point is a position in canvas pixel space.
type Point struct {
	X float64
	Y float64
}

// Orientation tells which way a triangle's apex faces.
type Orientation int

const (
	// PointsLeft marks triangles whose vertical edge is on the right.
	PointsLeft Orientation = iota
	// PointsRight marks triangles whose vertical edge is on the left.
	PointsRight
)

// tan60 is the slope of the diagonal grid lines.
var tan60 = math.Sqrt(3)

// Layout holds the fixed measurements of the equilateral tessellation.
// Side is the length of a triangle's vertical edge; Width is the
// horizontal extent of one column, Side*sqrt(3)/2.
type Layout struct {
	Side  float64
	Half  float64
	Width float64
}

// NewLayout derives a Layout from the triangle side length. Non-positive
// sides fall back to a 1px triangle so every Layout is usable.
func NewLayout(side float64) Layout {
	if side <= 0 {
		side = 1
	}
	return Layout{
		Side:  side,
		Half:  side / 2,
		Width: side * math.Sqrt(3) / 2,
	}
}

// OrientationAt returns the orientation of the tile at (col, row).
// Matching parity points left; the alternation is what makes adjacent
// triangles share their vertical edge.
func OrientationAt(col, row int) Orientation {
	if row%2 == col%2 {
		return PointsLeft
	}
	return PointsRight
}

// Vertices returns the three corners of the tile at (col, row). The
// ordering is fixed per orientation so that consecutive edges line up
// with geometric neighbors.
func (l Layout) Vertices(col, row int) [3]Point {
	left := float64(col) * l.Width
	top := float64(row-1) * l.Half
	if OrientationAt(col, row) == PointsLeft {
		return [3]Point{
			{left, top + l.Half},
			{left + l.Width, top},
			{left + l.Width, top + l.Side},
		}
	}
	return [3]Point{
		{left, top},
		{left + l.Width, top + l.Half},
		{left, top + l.Side},
	}
}

// PixelSize returns the canvas extent covered by a cols x rows grid.
// Each row adds half a side of height; the top and bottom rows are the
// clipped half-rows of the tessellation.
func (l Layout) PixelSize(cols, rows int) (float64, float64) {
	return float64(cols) * l.Width, float64(rows) * l.Half
}

// HitTest maps a pixel position to the address of the tile whose
// triangle contains it, or ok=false when the point lies outside the
// grid. The enclosing Width x Side rectangle is found by floor
// division, odd columns are mirrored to normalize orientation, and the
// two ±60° diagonals of the rectangle decide between the row above,
// this row, and the row below. Strict comparisons put boundary points
// in the "this row" case, so every point belongs to exactly one tile.
func (l Layout) HitTest(x, y float64, cols, rows int) (int, int, bool) {
	col := int(math.Floor(x / l.Width))
	if col < 0 || col >= cols {
		return 0, 0, false
	}
	blockRow := int(math.Floor(y / l.Side))

	xOff := x - float64(col)*l.Width
	yOff := y - float64(blockRow)*l.Side
	if col%2 == 1 {
		xOff = l.Width - xOff
	}

	rowOff := 0
	switch {
	case yOff < xOff/tan60:
		rowOff = -1
	case yOff > l.Side-xOff/tan60:
		rowOff = 1
	}

	row := 2*blockRow + 1 + rowOff
	if row < 0 || row >= rows {
		return 0, 0, false
	}
	return col, row, true
}

// Contains reports whether p lies inside or on the triangle spanned by
// vs, using sign-consistent edge cross products.
func Contains(vs [3]Point, p Point) bool {
	d0 := cross(vs[0], vs[1], p)
	d1 := cross(vs[1], vs[2], p)
	d2 := cross(vs[2], vs[0], p)
	hasNeg := d0 < 0 || d1 < 0 || d2 < 0
	hasPos := d0 > 0 || d1 > 0 || d2 > 0
	return !(hasNeg && hasPos)
}

func cross(a, b, p Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}
