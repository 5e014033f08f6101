package random

import "math/rand"

// Random provides the randomness behind room IDs, drawing assignments
// and illustrator selection. Nothing here needs cryptographic
// strength; the interface exists so tests can make every pick
// deterministic.
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// Shuffle pseudo-randomizes the order of n elements via swap
	Shuffle(n int, swap func(i, j int))
}

// MathRandom implements Random using math/rand/v2
type MathRandom struct{}

// New creates a new MathRandom
func New() *MathRandom {
	return &MathRandom{}
}

// Intn returns a random int in [0, n)
func (r *MathRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.Intn(n)
}

// Shuffle pseudo-randomizes the order of n elements
func (r *MathRandom) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}
