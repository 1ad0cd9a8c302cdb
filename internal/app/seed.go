package app

// seedSequence hands out the seeds the scatter actions consume. It
// starts at the configured seed so runs are reproducible, and advances
// on every use so repeated scatters within a run differ.
type seedSequence struct {
	next int64
}

func newSeedSequence(seed int64) *seedSequence {
	return &seedSequence{next: seed}
}

// Next returns the current seed and moves to the following one.
func (s *seedSequence) Next() int64 {
	v := s.next
	s.next++
	return v
}
