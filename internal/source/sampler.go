package source

// Sampler periodically reduces frames from a Raster to grid-resolution
// brightness samples. It runs entirely on the caller's loop: Poll is
// called once per UI tick and reports a sample set only when capture
// is running and a frame interval has elapsed.
type Sampler struct {
	src  Raster
	cols int
	rows int

	pace    *pacer
	running bool
}

// NewSampler builds a sampler producing cols x rows samples at most
// fps times per second.
func NewSampler(src Raster, cols, rows, fps int) *Sampler {
	return &Sampler{src: src, cols: cols, rows: rows, pace: newPacer(fps)}
}

// Start begins capture. The first frame arrives on the next Poll.
func (s *Sampler) Start() {
	if s.running {
		return
	}
	s.running = true
	s.pace.reset()
	// First poll after starting delivers immediately.
	s.pace.accumulator = s.pace.step
}

// Stop halts capture. No frame is delivered after Stop, even if one
// was already due.
func (s *Sampler) Stop() {
	s.running = false
	s.pace.reset()
}

// Running reports whether capture is active.
func (s *Sampler) Running() bool { return s.running }

// Toggle flips capture on or off and reports the new state.
func (s *Sampler) Toggle() bool {
	if s.running {
		s.Stop()
	} else {
		s.Start()
	}
	return s.running
}

// Poll returns the next brightness sample set when one is due. The
// boolean is false while stopped, between frames, or when the source
// has no frame to offer.
func (s *Sampler) Poll() ([]float64, bool) {
	if !s.running || !s.pace.due() {
		return nil, false
	}
	frame := s.src.Frame()
	if frame == nil {
		return nil, false
	}
	return Downsample(frame, s.cols, s.rows), true
}
