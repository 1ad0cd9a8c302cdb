//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"trigrid/internal/palette"
)

var pixel *ebiten.Image

func whitePixel() *ebiten.Image {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	return pixel
}

func fillRect(dst *ebiten.Image, rect image.Rectangle, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
	dst.DrawImage(whitePixel(), op)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

// HueStrip is a horizontal hue gradient the user presses or drags to
// pick the palette's base hue. It owns its own interacting flag so
// that an active picker drag is never also routed to the grid.
type HueStrip struct {
	rect        image.Rectangle
	hue         int
	interacting bool
	onHue       func(hue int)
}

// NewHueStrip builds a strip occupying rect, reporting hue changes
// through onHue.
func NewHueStrip(rect image.Rectangle, hue int, onHue func(int)) *HueStrip {
	return &HueStrip{rect: rect, hue: hue, onHue: onHue}
}

// Press claims pointer-down events landing inside the strip.
func (s *HueStrip) Press(x, y int) bool {
	if !pointInRect(x, y, s.rect) {
		return false
	}
	s.interacting = true
	s.setFromX(x)
	return true
}

// Drag continues an active pick; x is clamped to the strip so the
// gesture keeps working while the pointer strays vertically.
func (s *HueStrip) Drag(x, _ int) {
	if !s.interacting {
		return
	}
	s.setFromX(x)
}

// Release ends the pick gesture. Safe without a preceding Press.
func (s *HueStrip) Release() { s.interacting = false }

// Interacting reports whether a pick gesture is in progress.
func (s *HueStrip) Interacting() bool { return s.interacting }

func (s *HueStrip) setFromX(x int) {
	if x < s.rect.Min.X {
		x = s.rect.Min.X
	}
	if x >= s.rect.Max.X {
		x = s.rect.Max.X - 1
	}
	s.hue = (x - s.rect.Min.X) * palette.HueRange / s.rect.Dx()
	if s.onHue != nil {
		s.onHue(s.hue)
	}
}

// Draw paints the gradient and the marker for the current hue.
func (s *HueStrip) Draw(dst *ebiten.Image) {
	for x := s.rect.Min.X; x < s.rect.Max.X; x++ {
		hue := (x - s.rect.Min.X) * palette.HueRange / s.rect.Dx()
		col := image.Rect(x, s.rect.Min.Y, x+1, s.rect.Max.Y)
		fillRect(dst, col, palette.HueColor(hue))
	}
	markerX := s.rect.Min.X + s.hue*s.rect.Dx()/palette.HueRange
	marker := image.Rect(markerX-1, s.rect.Min.Y-2, markerX+2, s.rect.Max.Y+2)
	fillRect(dst, marker, color.RGBA{R: 240, G: 240, B: 245, A: 255})
}

// Button is a labeled tap target.
type Button struct {
	rect  image.Rectangle
	label string
	onTap func()
}

// NewButton builds a button occupying rect.
func NewButton(rect image.Rectangle, label string, onTap func()) *Button {
	return &Button{rect: rect, label: label, onTap: onTap}
}

// Press fires the button when the pointer lands inside it.
func (b *Button) Press(x, y int) bool {
	if !pointInRect(x, y, b.rect) {
		return false
	}
	if b.onTap != nil {
		b.onTap()
	}
	return true
}

// Draw paints the button background and its centered label.
func (b *Button) Draw(dst *ebiten.Image) {
	fillRect(dst, b.rect, color.RGBA{R: 54, G: 56, B: 64, A: 255})

	face := basicfont.Face7x13
	bounds := text.BoundString(face, b.label)
	x := b.rect.Min.X + (b.rect.Dx()-bounds.Dx())/2
	y := b.rect.Min.Y + (b.rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(dst, b.label, face, x, y, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}
