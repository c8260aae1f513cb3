package ga

import (
	"math/rand"
)

// Chromosome encodes one candidate selection as a bit vector: bit i set
// means catalog item i is included. Length always equals the catalog size.
type Chromosome []bool

// Clone returns an independent copy of the chromosome.
func (c Chromosome) Clone() Chromosome {
	copied := make(Chromosome, len(c))
	copy(copied, c)
	return copied
}

// CountSelected returns the number of set bits.
func (c Chromosome) CountSelected() int {
	n := 0
	for _, bit := range c {
		if bit {
			n++
		}
	}
	return n
}

// Population is an ordered collection of chromosomes. Order matters:
// fitness ties are broken by position to keep elitism deterministic under a
// fixed random source.
type Population []Chromosome

// RandomChromosome draws each bit independently with probability 0.5.
func RandomChromosome(length int, rng *rand.Rand) Chromosome {
	c := make(Chromosome, length)
	for i := range c {
		c[i] = rng.Intn(2) == 1
	}
	return c
}

// RandomPopulation builds the generation-0 population of size random
// chromosomes of the given length.
func RandomPopulation(size, length int, rng *rand.Rand) Population {
	pop := make(Population, size)
	for i := range pop {
		pop[i] = RandomChromosome(length, rng)
	}
	return pop
}
