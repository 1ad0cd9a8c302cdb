// Command trisnap paints a triangular grid from a picture and writes
// the result as a PNG, without opening a window.
package main

import (
	"flag"
	"log"
	"math"

	"trigrid/internal/board"
	"trigrid/internal/geom"
	"trigrid/internal/palette"
	"trigrid/internal/render"
	"trigrid/internal/source"
)

func main() {
	var (
		in      = flag.String("image", "", "input PNG or JPEG to sample")
		out     = flag.String("o", "trisnap.png", "output PNG path")
		width   = flag.Int("width", 960, "output width in pixels")
		height  = flag.Int("height", 640, "output height in pixels")
		side    = flag.Float64("side", 28, "triangle side length in pixels")
		states  = flag.Int("k", 4, "palette size including the background state")
		hue     = flag.Int("hue", 32, "base hue in [0,255]")
		mirror  = flag.Bool("mirror", false, "mirror columns horizontally")
		invert  = flag.Bool("invert", false, "map dark regions to high states")
		caption = flag.String("caption", "", "caption drawn onto the output")
	)
	flag.Parse()

	if *in == "" {
		log.Fatal("trisnap: -image is required")
	}

	still, err := source.OpenStillImage(*in)
	if err != nil {
		log.Fatalf("trisnap: %v", err)
	}

	layout := geom.NewLayout(*side)
	cols := int(float64(*width) / layout.Width)
	rows := int(float64(*height) / layout.Half)
	grid := board.NewGrid(layout, cols, rows, palette.New(*states, *hue))

	samples := source.Downsample(still.Frame(), cols, rows)
	grid.LoadBrightness(samples, *mirror, *invert)

	pw, ph := grid.PixelSize()
	canvas := render.NewImage(int(math.Ceil(pw)), int(math.Ceil(ph)))
	render.New(grid).Redraw(canvas)

	if *caption != "" {
		if err := canvas.Caption(*caption, palette.GridLine); err != nil {
			log.Fatalf("trisnap: %v", err)
		}
	}
	if err := canvas.SavePNG(*out); err != nil {
		log.Fatalf("trisnap: %v", err)
	}
	log.Printf("wrote %s (%dx%d tiles)", *out, cols, rows)
}
