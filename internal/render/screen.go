//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"trigrid/internal/geom"
)

// whitePixel is the source texture for solid triangle fills. 3x3 so
// sampling at (1,1) never bleeds past the texture edge.
var whitePixel *ebiten.Image

func fillSource() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(3, 3)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// Screen adapts an ebiten image to the Canvas interface. The zero
// offset draws at the top-left; widgets sharing the window translate
// the grid area instead of the canvas.
type Screen struct {
	Dst *ebiten.Image
}

// Fill floods the target image.
func (s *Screen) Fill(c color.Color) {
	s.Dst.Fill(c)
}

// Line strokes a segment without antialiasing; skeleton lines are
// axis-snapped or at exactly ±60°, and crisp edges match the software
// backend more closely.
func (s *Screen) Line(a, b geom.Point, width float64, c color.Color) {
	vector.StrokeLine(s.Dst,
		float32(a.X), float32(a.Y),
		float32(b.X), float32(b.Y),
		float32(width), c, false)
}

// Triangle fills a triangle by tessellating a closed vector path.
func (s *Screen) Triangle(vs [3]geom.Point, c color.Color) {
	var path vector.Path
	path.MoveTo(float32(vs[0].X), float32(vs[0].Y))
	path.LineTo(float32(vs[1].X), float32(vs[1].Y))
	path.LineTo(float32(vs[2].X), float32(vs[2].Y))
	path.Close()

	verts, idx := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := c.RGBA()
	for i := range verts {
		verts[i].SrcX = 1
		verts[i].SrcY = 1
		verts[i].ColorR = float32(r) / 0xffff
		verts[i].ColorG = float32(g) / 0xffff
		verts[i].ColorB = float32(b) / 0xffff
		verts[i].ColorA = float32(a) / 0xffff
	}
	s.Dst.DrawTriangles(verts, idx, fillSource(), &ebiten.DrawTrianglesOptions{})
}
