package render

import (
	"image/color"

	"trigrid/internal/geom"
)

// Canvas is the immediate-mode surface the renderer draws to. The
// renderer issues calls but owns no surface lifecycle; ebiten screens
// and software contexts both satisfy it.
type Canvas interface {
	// Fill floods the whole surface with one color.
	Fill(c color.Color)
	// Line strokes a straight segment. Segments extending past the
	// surface are clipped by the backend.
	Line(a, b geom.Point, width float64, c color.Color)
	// Triangle fills the triangle spanned by the three points.
	Triangle(vs [3]geom.Point, c color.Color)
}
