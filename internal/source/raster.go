package source

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// Raster supplies a rectangular block of pixels to sample the grid
// from. The grid is agnostic to where the pixels come from; a static
// picture and a live feed satisfy it alike.
type Raster interface {
	Frame() image.Image
}

// StillImage is a Raster over one fixed picture.
type StillImage struct {
	img image.Image
}

// NewStillImage wraps a decoded picture.
func NewStillImage(img image.Image) *StillImage {
	return &StillImage{img: img}
}

// OpenStillImage decodes a PNG or JPEG file into a StillImage.
func OpenStillImage(path string) (*StillImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &StillImage{img: img}, nil
}

// Frame returns the picture.
func (s *StillImage) Frame() image.Image { return s.img }
