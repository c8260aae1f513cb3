package ga

import (
	"math/rand"
)

// Mutate returns a copy of the chromosome with each bit independently
// flipped with probability rate (bit-flip mutation). The input is never
// modified and offspring length equals the input length.
func Mutate(c Chromosome, rate float64, rng *rand.Rand) Chromosome {
	mutant := c.Clone()
	for i := range mutant {
		if rng.Float64() < rate {
			mutant[i] = !mutant[i]
		}
	}
	return mutant
}
