package board

import "math/rand/v2"

// RNG is a thin wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// StateN returns a random tile state in [0, k).
func (r *RNG) StateN(k int) uint8 {
	if k <= 0 {
		return 0
	}
	return uint8(r.r.IntN(k))
}

// Randomize scatters random states across the whole grid, ending any
// active gesture. Deterministic for a given seed and grid size.
func (g *Grid) Randomize(seed int64) {
	rng := NewRNG(seed)
	k := g.pal.Size()
	for i := range g.tiles {
		g.tiles[i].state = rng.StateN(k)
	}
	g.Release()
}
