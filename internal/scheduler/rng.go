package scheduler

import "math/rand"

// RNG wraps a seeded *rand.Rand so no pipeline stage ever touches the
// package-level math/rand state — every run with the same seed, run on the
// same goroutine layout, replays identically.
type RNG struct {
	r *rand.Rand
}

// NewRNG builds a seeded RNG. Seed zero still gives a deterministic sequence
// (rand.NewSource(0) is valid), it just isn't randomized per-process.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a pseudo-random int in [0, n).
func (g *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return g.r.Intn(n)
}

// Float64 returns a pseudo-random float64 in [0, 1).
func (g *RNG) Float64() float64 {
	return g.r.Float64()
}

// Perm returns a pseudo-random permutation of [0, n).
func (g *RNG) Perm(n int) []int {
	return g.r.Perm(n)
}
