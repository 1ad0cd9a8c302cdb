package source

import (
	"image"
	"math"
)

// DemoFeed is a synthetic luminance source: a bright blob drifting in
// a Lissajous orbit over a dark field. It stands in for a live camera
// so the paint-from-video path works everywhere; actual camera capture
// is an external collaborator outside this module.
type DemoFeed struct {
	w, h  int
	phase float64
	buf   *image.Gray
}

// NewDemoFeed allocates a feed with the given frame size.
func NewDemoFeed(w, h int) *DemoFeed {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &DemoFeed{w: w, h: h, buf: image.NewGray(image.Rect(0, 0, w, h))}
}

// Step advances the animation. Called once per UI tick.
func (d *DemoFeed) Step() {
	d.phase += 0.02
}

// Frame renders the current animation frame.
func (d *DemoFeed) Frame() image.Image {
	cx := (0.5 + 0.35*math.Sin(d.phase)) * float64(d.w)
	cy := (0.5 + 0.35*math.Sin(d.phase*1.3+1)) * float64(d.h)
	radius := 0.4 * float64(min(d.w, d.h))

	for y := 0; y < d.h; y++ {
		for x := 0; x < d.w; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			dist := math.Sqrt(dx*dx+dy*dy) / radius
			v := 1 - dist
			if v < 0 {
				v = 0
			}
			d.buf.Pix[y*d.buf.Stride+x] = uint8(v * 255)
		}
	}
	return d.buf
}
