package source

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Downsample reduces a picture to one brightness value per grid cell,
// row-major, each in [0,1]. Scaling goes through a bilinear filter so
// every source pixel contributes to its cell instead of being point
// sampled.
func Downsample(img image.Image, cols, rows int) []float64 {
	if cols < 1 || rows < 1 {
		return nil
	}
	gray := image.NewGray(image.Rect(0, 0, cols, rows))
	xdraw.ApproxBiLinear.Scale(gray, gray.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	out := make([]float64, cols*rows)
	for i, p := range gray.Pix {
		out[i] = float64(p) / 255
	}
	return out
}
