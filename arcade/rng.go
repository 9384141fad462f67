package arcade

import "math/rand"

// RNG samples integers uniformly from an inclusive range.
type RNG interface {
	IntInRange(min, max int) int
}

type mathRNG struct {
	r *rand.Rand
}

// NewRNG returns the default RNG seeded with seed.
func NewRNG(seed int64) RNG {
	return &mathRNG{r: rand.New(rand.NewSource(seed))}
}

func (m *mathRNG) IntInRange(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + m.r.Intn(max-min+1)
}
