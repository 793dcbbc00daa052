package game

import "math/rand/v2"

// Rand is the randomness the game needs: a uniform shuffle and a uniform
// integer for grid cells. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a deterministic source for a given seed.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type systemRand struct{}

func (systemRand) IntN(n int) int                     { return rand.IntN(n) }
func (systemRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// SystemRand uses the process-wide randomly seeded source.
func SystemRand() Rand { return systemRand{} }
