package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"trigrid/internal/geom"
)

// Image is the software Canvas backend. It renders into an in-memory
// RGBA picture, which makes the renderer testable without a window and
// backs PNG snapshot export.
type Image struct {
	dc *gg.Context
}

// NewImage allocates a software canvas of the given pixel size.
func NewImage(w, h int) *Image {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Image{dc: gg.NewContext(w, h)}
}

// Fill floods the surface.
func (c *Image) Fill(col color.Color) {
	c.dc.SetColor(col)
	c.dc.Clear()
}

// Line strokes a segment.
func (c *Image) Line(a, b geom.Point, width float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	c.dc.Stroke()
}

// Triangle fills the triangle spanned by vs.
func (c *Image) Triangle(vs [3]geom.Point, col color.Color) {
	c.dc.SetColor(col)
	c.dc.MoveTo(vs[0].X, vs[0].Y)
	c.dc.LineTo(vs[1].X, vs[1].Y)
	c.dc.LineTo(vs[2].X, vs[2].Y)
	c.dc.ClosePath()
	c.dc.Fill()
}

// Caption draws a line of text near the bottom-left corner, for
// annotating exported snapshots.
func (c *Image) Caption(s string, col color.Color) error {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("parse caption font: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    13,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	c.dc.SetFontFace(face)
	c.dc.SetColor(col)
	c.dc.DrawString(s, 8, float64(c.dc.Height())-8)
	return nil
}

// Result returns the rendered picture.
func (c *Image) Result() image.Image { return c.dc.Image() }

// SavePNG writes the rendered picture to a file.
func (c *Image) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
