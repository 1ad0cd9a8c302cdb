package source

import "time"

// pacer meters frame grabs to a steady rate using an accumulator over
// wall-clock deltas. It is polled from the UI loop, so a "tick" can
// never fire between Stop and the next poll: Reset drains whatever time
// had accumulated.
type pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time

	now func() time.Time
}

func newPacer(fps int) *pacer {
	p := &pacer{now: time.Now}
	p.setFPS(fps)
	// Deliver the first frame on the first poll.
	p.accumulator = p.step
	return p
}

func (p *pacer) setFPS(fps int) {
	if fps <= 0 {
		fps = 10
	}
	p.step = time.Second / time.Duration(fps)
}

// due reports whether the next frame should be grabbed now.
func (p *pacer) due() bool {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	if p.accumulator >= p.step {
		p.accumulator -= p.step
		return true
	}
	return false
}

// reset discards accumulated time so a stale pending tick cannot
// survive a pause.
func (p *pacer) reset() {
	p.accumulator = 0
	p.last = time.Time{}
}
