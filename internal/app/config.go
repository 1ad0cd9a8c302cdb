package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Width  int
	Height int
	Side   float64
	States int
	Hue    int
	FPS    int
	Mirror bool
	Invert bool
	Seed   int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:  960,
		Height: 640,
		Side:   50,
		States: 4,
		Hue:    32,
		FPS:    10,
		Mirror: true,
		Seed:   42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "drawing area width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "drawing area height in pixels")
	fs.Float64Var(&c.Side, "side", c.Side, "triangle side length in pixels")
	fs.IntVar(&c.States, "k", c.States, "palette size including the background state")
	fs.IntVar(&c.Hue, "hue", c.Hue, "base hue in [0,255]")
	fs.IntVar(&c.FPS, "fps", c.FPS, "feed sampling rate")
	fs.BoolVar(&c.Mirror, "mirror", c.Mirror, "mirror sampled frames horizontally")
	fs.BoolVar(&c.Invert, "invert", c.Invert, "map dark sample regions to high states")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random scatter")
}
