package ga

import (
	"math/rand"
)

// CrossoverMode selects how the cut point is chosen for crossover events.
type CrossoverMode string

const (
	// SinglePoint cuts at length/2 for every crossover event.
	SinglePoint CrossoverMode = "single_point"
	// RandomPoint draws the cut uniformly from [1, length-1] per event.
	RandomPoint CrossoverMode = "random_point"
)

// Crossover recombines two parents of equal length into two offspring.
//
// With probability rate the parents exchange bit ranges at the cut point;
// otherwise the offspring are direct copies of the parents. Offspring length
// always equals parent length. Chromosomes shorter than two bits admit no
// cut and are copied as-is.
func Crossover(p1, p2 Chromosome, mode CrossoverMode, rate float64, rng *rand.Rand) (Chromosome, Chromosome) {
	length := len(p1)
	if length < 2 || rng.Float64() >= rate {
		return p1.Clone(), p2.Clone()
	}

	cut := length / 2
	if mode == RandomPoint {
		cut = 1 + rng.Intn(length-1)
	}

	c1 := make(Chromosome, length)
	c2 := make(Chromosome, length)
	copy(c1[:cut], p1[:cut])
	copy(c1[cut:], p2[cut:])
	copy(c2[:cut], p2[:cut])
	copy(c2[cut:], p1[cut:])
	return c1, c2
}
