package palette

import "image/color"

// HueRange is the size of the wrapping hue space. Hues are bytes; 256
// wraps back to 0.
const HueRange = 256

// hueStep separates consecutive palette entries in hue space.
const hueStep = 18

const (
	saturation = 0.72
	brightness = 0.92
)

// Background is the fixed color of state-0 tiles and the canvas behind
// the grid.
var Background = color.RGBA{R: 16, G: 16, B: 20, A: 255}

// GridLine is the color of the tessellation skeleton. Empty tiles
// stroke with it so they outline visibly against the background.
var GridLine = color.RGBA{R: 74, G: 76, B: 84, A: 255}

// Palette maps a tile state to its display color. Index 0 is always
// the background; indices 1..K-1 are derived from one base hue.
type Palette struct {
	baseHue int
	colors  []color.RGBA
}

// New builds a palette of size colors seeded with the given base hue.
// A palette needs at least the background entry and one paint color;
// tile states are bytes, so sizes cap at 256.
func New(size int, hue int) *Palette {
	if size < 2 {
		size = 2
	}
	if size > 256 {
		size = 256
	}
	p := &Palette{colors: make([]color.RGBA, size)}
	p.colors[0] = Background
	p.SetBaseHue(hue)
	return p
}

// Size returns the number of states the palette covers, including the
// background entry.
func (p *Palette) Size() int { return len(p.colors) }

// BaseHue returns the current base hue, normalized into [0, HueRange).
func (p *Palette) BaseHue() int { return p.baseHue }

// SetBaseHue regenerates colors 1..K-1 as fixed hue offsets from hue,
// wrapping modulo HueRange. Index 0 is never touched.
func (p *Palette) SetBaseHue(hue int) {
	p.baseHue = ((hue % HueRange) + HueRange) % HueRange
	for i := 1; i < len(p.colors); i++ {
		h := (p.baseHue + (i-1)*hueStep) % HueRange
		p.colors[i] = hsv(h, saturation, brightness)
	}
}

// ColorFor returns the display color for a tile state. States past the
// end clamp to the last entry.
func (p *Palette) ColorFor(state uint8) color.RGBA {
	idx := int(state)
	if idx >= len(p.colors) {
		idx = len(p.colors) - 1
	}
	return p.colors[idx]
}

// HueColor previews the paint color a base hue would produce. Hue
// picker widgets use it to draw their gradient.
func HueColor(hue int) color.RGBA {
	return hsv(((hue%HueRange)+HueRange)%HueRange, saturation, brightness)
}

// hsv converts a byte-range hue plus saturation/value in [0,1] to RGBA.
func hsv(h int, s, v float64) color.RGBA {
	hf := float64(h) * 6 / HueRange
	sector := int(hf) % 6
	f := hf - float64(int(hf))

	pp := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch sector {
	case 0:
		r, g, b = v, t, pp
	case 1:
		r, g, b = q, v, pp
	case 2:
		r, g, b = pp, v, t
	case 3:
		r, g, b = pp, q, v
	case 4:
		r, g, b = t, pp, v
	default:
		r, g, b = v, pp, q
	}
	return color.RGBA{
		R: uint8(r*255 + 0.5),
		G: uint8(g*255 + 0.5),
		B: uint8(b*255 + 0.5),
		A: 255,
	}
}
