package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FillBinary marks each cell alive with probability 0.5.
func (r *RNG) FillBinary(cells []CellState) {
	for i := range cells {
		cells[i] = CellState(r.r.IntN(2))
	}
}
